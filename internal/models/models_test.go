package models

import "testing"

func TestCustomer(t *testing.T) {
	t.Run("NewCustomer", func(t *testing.T) {
		c := NewCustomer("Marie Curie")
		if c.Persisted() {
			t.Error("new customer should not be persisted")
		}
		if c.Name != "Marie Curie" {
			t.Errorf("expected name Marie Curie, got %s", c.Name)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name    string
			value   string
			wantErr bool
		}{
			{name: "valid", value: "Tu Youyou", wantErr: false},
			{name: "empty", value: "", wantErr: true},
			{name: "whitespace", value: "   ", wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				err := NewCustomer(tt.value).Validate()
				if (err != nil) != tt.wantErr {
					t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			})
		}
	})

	t.Run("String", func(t *testing.T) {
		c := &Customer{ID: 3, Name: "Carl Sagan"}
		if got := c.String(); got != "Customer(id=3, name=Carl Sagan)" {
			t.Errorf("unexpected String(): %s", got)
		}
	})
}
