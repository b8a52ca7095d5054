package analyses

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseItems(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []AnalysisResultItem
		wantErr error
	}{
		{
			name: "empty array",
			raw:  " \n[]\n ",
			want: []AnalysisResultItem{},
		},
		{
			name: "single record",
			raw:  geneticsReply,
			want: []AnalysisResultItem{{
				QuestionNumber:          "3",
				Topic:                   "Genetics",
				IntendedLearningOutcome: "Apply Mendelian genetics",
				BloomsLevel:             BloomApplying,
				SuggestedItemPlacement:  "Keep as is",
				SuggestedTOSTableRow:    "Genetics: Applying principles",
			}},
		},
		{
			name: "lenient field values",
			raw:  `[{"questionNumber":4,"topic":null,"bloomsLevel":"Unknown"}]`,
			want: []AnalysisResultItem{{
				QuestionNumber: "4",
				BloomsLevel:    BloomLevel("Unknown"),
			}},
		},
		{name: "not json", raw: "not json", wantErr: ErrMalformedResponse},
		{name: "empty reply", raw: "   ", wantErr: ErrMalformedResponse},
		{name: "trailing garbage", raw: "[] extra", wantErr: ErrMalformedResponse},
		{name: "object instead of array", raw: `{"items":[]}`, wantErr: ErrUnexpectedFormat},
		{name: "array of strings", raw: `["a","b"]`, wantErr: ErrUnexpectedFormat},
		{name: "first element not object", raw: `[3, {"topic":"x"}]`, wantErr: ErrUnexpectedFormat},
		{
			name: "later element not object becomes empty record",
			raw:  `[{"topic":"x"}, 5, "y"]`,
			want: []AnalysisResultItem{{Topic: "x"}, {}, {}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseItems(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseItems: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected items (-want +got):\n%s", diff)
			}
		})
	}
}
