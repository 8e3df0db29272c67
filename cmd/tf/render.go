package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/treeform-format/go-treeform/value"
)

type renderColors struct {
	Key    *color.Color
	Str    *color.Color
	Num    *color.Color
	Bool   *color.Color
	Null   *color.Color
	Tag    *color.Color
	Anchor *color.Color
}

func noColors() *renderColors {
	plain := color.New()
	return &renderColors{
		Key: plain, Str: plain, Num: plain, Bool: plain,
		Null: plain, Tag: plain, Anchor: plain,
	}
}

// renderer prints decoded values, either as an indented tree or as
// JSON with mapping order preserved. Cyclic containers are printed
// once and referenced as *cycle afterwards.
type renderer struct {
	w       io.Writer
	c       *renderColors
	json    bool
	seen    map[*value.Map]bool
	seenSeq map[uintptr]bool
}

func newRenderer(w io.Writer, c *renderColors, asJSON bool) *renderer {
	return &renderer{
		w: w, c: c, json: asJSON,
		seen:    map[*value.Map]bool{},
		seenSeq: map[uintptr]bool{},
	}
}

func (r *renderer) Render(v any) error {
	if r.json {
		if err := r.renderJSON(v); err != nil {
			return err
		}
	} else {
		r.render(v, 0, false)
	}
	_, err := io.WriteString(r.w, "\n")
	return err
}

func (r *renderer) render(v any, indent int, inline bool) {
	pad := strings.Repeat("  ", indent)
	switch x := v.(type) {
	case nil:
		r.c.Null.Fprint(r.w, "null")
	case bool:
		r.c.Bool.Fprintf(r.w, "%v", x)
	case int64:
		r.c.Num.Fprintf(r.w, "%d", x)
	case *big.Int:
		r.c.Num.Fprint(r.w, x.String())
	case float64:
		r.c.Num.Fprintf(r.w, "%g", x)
	case string:
		r.c.Str.Fprint(r.w, x)
	case value.Symbol:
		r.c.Str.Fprint(r.w, x.String())
	case []byte:
		r.c.Tag.Fprint(r.w, "!!binary ")
		r.c.Str.Fprint(r.w, base64.StdEncoding.EncodeToString(x))
	case time.Time:
		r.c.Num.Fprint(r.w, x.Format(time.RFC3339Nano))
	case *value.Private:
		r.c.Tag.Fprintf(r.w, "%s ", x.Tag)
		r.render(x.Value, indent, true)
	case []any:
		if len(x) == 0 {
			fmt.Fprint(r.w, "[]")
			return
		}
		p := reflect.ValueOf(x).Pointer()
		if r.seenSeq[p] {
			r.c.Anchor.Fprint(r.w, "*cycle")
			return
		}
		r.seenSeq[p] = true
		defer delete(r.seenSeq, p)
		for i, item := range x {
			if i > 0 || !inline {
				fmt.Fprintf(r.w, "\n%s", pad)
			}
			fmt.Fprint(r.w, "- ")
			r.render(item, indent+1, true)
		}
	case *value.Map:
		if r.seen[x] {
			r.c.Anchor.Fprint(r.w, "*cycle")
			return
		}
		r.seen[x] = true
		defer delete(r.seen, x)
		if x.Len() == 0 {
			fmt.Fprint(r.w, "{}")
			return
		}
		for i, e := range x.Entries() {
			if i > 0 || !inline {
				fmt.Fprintf(r.w, "\n%s", pad)
			}
			r.renderKey(e.Key)
			fmt.Fprint(r.w, ": ")
			r.render(e.Val, indent+1, false)
		}
	default:
		fmt.Fprintf(r.w, "%v", x)
	}
}

func (r *renderer) renderKey(k any) {
	switch x := k.(type) {
	case string:
		r.c.Key.Fprint(r.w, x)
	case value.Symbol:
		r.c.Key.Fprint(r.w, x.String())
	default:
		r.c.Key.Fprintf(r.w, "%v", x)
	}
}

// renderJSON writes JSON by hand for containers so mapping insertion
// order survives, deferring to encoding/json for leaves.
func (r *renderer) renderJSON(v any) error {
	switch x := v.(type) {
	case []any:
		p := reflect.ValueOf(x).Pointer()
		if len(x) > 0 {
			if r.seenSeq[p] {
				return fmt.Errorf("cannot render cyclic document as JSON")
			}
			r.seenSeq[p] = true
			defer delete(r.seenSeq, p)
		}
		io.WriteString(r.w, "[")
		for i, item := range x {
			if i > 0 {
				io.WriteString(r.w, ",")
			}
			if err := r.renderJSON(item); err != nil {
				return err
			}
		}
		io.WriteString(r.w, "]")
		return nil
	case *value.Map:
		if r.seen[x] {
			return fmt.Errorf("cannot render cyclic document as JSON")
		}
		r.seen[x] = true
		defer delete(r.seen, x)
		io.WriteString(r.w, "{")
		for i, e := range x.Entries() {
			if i > 0 {
				io.WriteString(r.w, ",")
			}
			key, err := json.Marshal(jsonKey(e.Key))
			if err != nil {
				return err
			}
			r.w.Write(key)
			io.WriteString(r.w, ":")
			if err := r.renderJSON(e.Val); err != nil {
				return err
			}
		}
		io.WriteString(r.w, "}")
		return nil
	case value.Symbol:
		return r.leafJSON(x.String())
	case *big.Int:
		_, err := io.WriteString(r.w, x.String())
		return err
	case *value.Private:
		return r.leafJSON(x.String())
	case time.Time:
		return r.leafJSON(x.Format(time.RFC3339Nano))
	default:
		return r.leafJSON(v)
	}
}

func (r *renderer) leafJSON(v any) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.w.Write(d)
	return err
}

func jsonKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case value.Symbol:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
