package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "already normalized",
			input: "+6281234567890",
			want:  "+6281234567890",
		},
		{
			name:  "dashes and spaces stripped",
			input: "+62 812-3456-7890",
			want:  "+6281234567890",
		},
		{
			name:  "parentheses stripped",
			input: "(62) 812 3456 7890",
			want:  "+6281234567890",
		},
		{
			name:  "plus prefix added when missing",
			input: "6281234567890",
			want:  "+6281234567890",
		},
		{
			name:    "too short",
			input:   "+62812",
			wantErr: true,
		},
		{
			name:    "letters rejected",
			input:   "+62812abc5678",
			wantErr: true,
		},
		{
			name:    "leading zero country code rejected",
			input:   "+0812345678901",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
