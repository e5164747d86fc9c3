package schema

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Field
		wantErr error
	}{
		{
			name: "single id primary key",
			fields: []Field{
				{Name: "id", Type: "integer", PrimaryKey: true},
				{Name: "title", Type: "string"},
			},
		},
		{
			name: "no primary key",
			fields: []Field{
				{Name: "title", Type: "string"},
			},
			wantErr: ErrMissingIDPrimaryKey,
		},
		{
			name: "primary key not named id",
			fields: []Field{
				{Name: "uuid", Type: "string", PrimaryKey: true},
			},
			wantErr: ErrMissingIDPrimaryKey,
		},
		{
			name: "composite primary key",
			fields: []Field{
				{Name: "id", Type: "integer", PrimaryKey: true},
				{Name: "tenant", Type: "integer", PrimaryKey: true},
			},
			wantErr: ErrMultiplePrimaryKeys,
		},
		{
			// Multiple keys wins even when none is "id".
			name: "composite without id",
			fields: []Field{
				{Name: "a", Type: "integer", PrimaryKey: true},
				{Name: "b", Type: "integer", PrimaryKey: true},
			},
			wantErr: ErrMultiplePrimaryKeys,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Descriptor{Name: "Blog.Post", Spec: Spec{Fields: tt.fields}}
			err := Validate(d)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
