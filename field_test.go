package fromrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveColumn(t *testing.T) {
	tests := []struct {
		name string
		opts []FieldOption
		want string
	}{
		{"id", nil, "id"},
		{"id", []FieldOption{WithColumn("todo_id")}, "todo_id"},
		{"MiXeD_Case", nil, "MiXeD_Case"}, // verbatim, no folding
		{"id", []FieldOption{WithColumn("a"), WithColumn("b")}, "b"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, effectiveColumn(tc.name, tc.opts))
	}
}

func TestField_ColumnsPerStrategy(t *testing.T) {
	type rec struct {
		N int64
		U testUser
	}

	direct := Column("n", func(r *rec, v int64) { r.N = v })
	assert.Equal(t, []string{"n"}, direct.columns)

	renamed := Column("n", func(r *rec, v int64) { r.N = v }, WithColumn("num"))
	assert.Equal(t, []string{"num"}, renamed.columns)

	conv := Convert("n", func(v int64) int64 { return v }, func(r *rec, v int64) { r.N = v })
	assert.Equal(t, []string{"n"}, conv.columns)

	flat := Flatten(userSchema(), func(r *rec, u testUser) { r.U = u })
	assert.Equal(t, []string{"user_id", "username"}, flat.columns)
}
