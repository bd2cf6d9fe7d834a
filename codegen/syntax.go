package codegen

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

// ErrSyntax is returned when an emitted header does not parse as C++.
var ErrSyntax = errors.New("emitted header is not valid C++")

// SyntaxVerifier parses emitted headers with the tree-sitter C++ grammar.
type SyntaxVerifier struct {
	lang *sitter.Language
}

// NewSyntaxVerifier creates a verifier.
func NewSyntaxVerifier() *SyntaxVerifier {
	return &SyntaxVerifier{lang: cpp.GetLanguage()}
}

// Verify parses content and fails with ErrSyntax at the first error or
// missing node.
func (v *SyntaxVerifier) Verify(ctx context.Context, content []byte) error {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(v.lang)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return fmt.Errorf("parse c++: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}

	if bad := firstError(root); bad != nil {
		pos := bad.StartPoint()
		return fmt.Errorf("%w: %s at line %d, column %d", ErrSyntax, bad.Type(), pos.Row+1, pos.Column+1)
	}
	return ErrSyntax
}

// firstError returns the first error or missing node in document order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
