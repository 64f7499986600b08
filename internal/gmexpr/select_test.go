package gmexpr

import (
	"testing"

	"github.com/specialistvlad/gmc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelect(t *testing.T) {
	testCases := []struct {
		name      string
		expr      string
		want      model.QueriedProperty
		expectErr bool
	}{
		{
			name: "filter with connectives",
			expr: "world_db->select(r : Robot | r.free && r.battery > 20 || r.idle)",
			want: model.QueriedProperty{
				QueriedVar: "world_db",
				Result:     model.TypedVar{Name: "r", Type: "Robot"},
				Query:      []string{"r.free", "&&", "r.battery > 20", "||", "r.idle"},
			},
		},
		{
			name: "no filter",
			expr: "locations -> select(l : Location)",
			want: model.QueriedProperty{
				QueriedVar: "locations",
				Result:     model.TypedVar{Name: "l", Type: "Location"},
				Query:      []string{},
			},
		},
		{
			name: "nested connective is not split",
			expr: `rooms->select(x : Room | isIn(x, "a|b") && (x.a || x.b))`,
			want: model.QueriedProperty{
				QueriedVar: "rooms",
				Result:     model.TypedVar{Name: "x", Type: "Room"},
				Query:      []string{`isIn(x, "a|b")`, "&&", "(x.a || x.b)"},
			},
		},
		{name: "not a select", expr: "rooms.select(x)", expectErr: true},
		{name: "declaration without type", expr: "a->select(r Robot)", expectErr: true},
		{name: "dangling connective", expr: "a->select(r : R | x &&)", expectErr: true},
		{name: "unbalanced", expr: "a->select(r : R | f(x)", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSelect(tc.expr)
			if tc.expectErr {
				require.Error(t, err)
				assertSyntax(t, err, ParserSelect)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
