package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Marketing", "marketing"},
		{"spaces", "Recursos Humanos", "recursos-humanos"},
		{"accents stripped", "Diseño Gráfico", "diseno-grafico"},
		{"symbol runs collapse", "IT & Sistemas", "it-sistemas"},
		{"leading and trailing junk", "  ¡Ventas!  ", "ventas"},
		{"numbers kept", "Web 3.0", "web-3-0"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	once := Slugify("Atención a Clientes")
	assert.Equal(t, once, Slugify(once))
}
