package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

func TestParseRepository(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{
			name:      "valid owner/name",
			input:     "m-mizutani/octoscope",
			wantOwner: "m-mizutani",
			wantName:  "octoscope",
		},
		{
			name:    "missing name",
			input:   "m-mizutani/",
			wantErr: true,
		},
		{
			name:    "missing owner",
			input:   "/octoscope",
			wantErr: true,
		},
		{
			name:    "no separator",
			input:   "octoscope",
			wantErr: true,
		},
		{
			name:    "too many segments",
			input:   "a/b/c",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := model.ParseRepository(tc.input)
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, repo.Owner, tc.wantOwner)
			gt.Equal(t, repo.Name, tc.wantName)
			gt.Equal(t, repo.FullName(), tc.input)
		})
	}
}
