// Package exprtag adds an application tag whose scalar payload is an
// expression evaluated at construction time. It exists mostly as a
// worked example of extending the tag table.
package exprtag

import (
	"github.com/expr-lang/expr"

	"github.com/treeform-format/go-treeform/construct"
	"github.com/treeform-format/go-treeform/ir"
)

const Tag = "!expr"

// Register installs the !expr decoder on r with an empty environment.
func Register(r *construct.Registry) error {
	return RegisterEnv(r, nil)
}

// RegisterEnv installs the !expr decoder; env is visible to every
// evaluated expression.
func RegisterEnv(r *construct.Registry, env map[string]any) error {
	return r.Exact(Tag, func(b *construct.Builder, node *ir.Node) (any, error) {
		return Construct(b, node, env)
	})
}

func Construct(b *construct.Builder, node *ir.Node, env map[string]any) (any, error) {
	text, _, err := b.Scalar(node)
	if err != nil {
		return nil, err
	}
	if env == nil {
		env = map[string]any{}
	}
	prg, err := expr.Compile(text, expr.Env(env))
	if err != nil {
		return nil, &construct.Error{Tag: node.Tag, Err: construct.ErrScalarParse,
			Msg: err.Error()}
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, &construct.Error{Tag: node.Tag, Err: construct.ErrScalarParse,
			Msg: err.Error()}
	}
	return res, nil
}
