package view_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/nfrund/sevahub/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ctxKey struct{}

func TestAdapters(t *testing.T) {
	t.Run("gomponent inside templ", func(t *testing.T) {
		var buf bytes.Buffer
		comp := view.AdaptGomponentToTempl(h.Strong(g.Text("bold")))
		require.NoError(t, comp.Render(context.Background(), &buf))
		assert.Equal(t, "<strong>bold</strong>", buf.String())
	})

	t.Run("templ inside gomponent keeps the captured context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ctxKey{}, "from-request")
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			v, _ := ctx.Value(ctxKey{}).(string)
			_, err := io.WriteString(w, v)
			return err
		})

		var buf bytes.Buffer
		require.NoError(t, h.Div(view.AdaptTemplToGomponent(ctx, comp)).Render(&buf))
		assert.Equal(t, "<div>from-request</div>", buf.String())
	})
}
