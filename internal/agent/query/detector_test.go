package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
)

func TestDetectNewSearch(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		baseQuery string
		intent    *model.Intent
		want      bool
	}{
		{
			name:      "category absent from base starts new search",
			message:   "ada meja kayu",
			baseQuery: "sofa",
			want:      true,
		},
		{
			name:      "same category in base is continuation",
			message:   "sofa yang putih",
			baseQuery: "sofa",
			want:      false,
		},
		{
			name:      "classifier category differing from base starts new search",
			message:   "sesuatu untuk ruang makan",
			baseQuery: "sofa",
			intent:    &model.Intent{Filters: &model.FilterPatch{Category: "meja"}},
			want:      true,
		},
		{
			name:      "classifier category matching base is continuation",
			message:   "yang lebih besar",
			baseQuery: "sofa",
			intent:    &model.Intent{Filters: &model.FilterPatch{Category: "sofa"}},
			want:      false,
		},
		{
			name:      "explicit trigger without category starts new search",
			message:   "cari yang lain",
			baseQuery: "sofa",
			want:      true,
		},
		{
			name:      "attribute mention is continuation",
			message:   "putih",
			baseQuery: "sofa",
			want:      false,
		},
		{
			name:      "attribute outranked by new category",
			message:   "meja putih",
			baseQuery: "sofa",
			want:      true,
		},
		{
			name:      "no rule matches defaults to continuation",
			message:   "yang itu",
			baseQuery: "sofa",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectNewSearch(tt.message, tt.baseQuery, tt.intent))
		})
	}
}
