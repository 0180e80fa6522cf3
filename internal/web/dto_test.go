package web

import (
	"testing"
)

func Test_createPlayer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    createPlayer
		wantErr bool
	}{
		{
			name: "valid",
			form: createPlayer{
				Name:      "Zeus",
				Rank:      "challenger",
				Region:    "korea",
				Main:      []string{"top"},
				Secondary: []string{"mid"},
			},
			wantErr: false,
		},
		{
			name: "missing name",
			form: createPlayer{
				Rank:   "gold",
				Region: "others",
				Main:   []string{"top"},
			},
			wantErr: true,
		},
		{
			name: "unknown rank",
			form: createPlayer{
				Name:   "Zeus",
				Rank:   "wood",
				Region: "others",
				Main:   []string{"top"},
			},
			wantErr: true,
		},
		{
			name: "unknown region",
			form: createPlayer{
				Name:   "Zeus",
				Rank:   "gold",
				Region: "mars",
				Main:   []string{"top"},
			},
			wantErr: true,
		},
		{
			name: "no main role",
			form: createPlayer{
				Name:      "Zeus",
				Rank:      "gold",
				Region:    "others",
				Secondary: []string{"top"},
			},
			wantErr: true,
		},
		{
			name: "role in two tiers",
			form: createPlayer{
				Name:      "Zeus",
				Rank:      "gold",
				Region:    "others",
				Main:      []string{"top"},
				Secondary: []string{"top"},
			},
			wantErr: true,
		},
		{
			name: "unknown role",
			form: createPlayer{
				Name:   "Zeus",
				Rank:   "gold",
				Region: "others",
				Main:   []string{"coach"},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.form.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
