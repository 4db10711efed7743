package cubiomes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alicerunsonfedora/mcmaps/internal/core/catalog"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

func TestVersionKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.21.3", "1.21"},
		{"1.21", "1.21"},
		{" 1.16.5 ", "1.16"},
		{"1.20.5-pre1", "1.20"},
		{"1.7", "1.7"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, versionKey(tt.in))
		})
	}
}

func TestStructureTypesCoverCatalog(t *testing.T) {
	// Mineshafts are located by a different cubiomes routine.
	for _, kind := range catalog.Structures {
		if kind.ID == "mineshaft" {
			continue
		}
		_, ok := structureTypes[kind.ID]
		assert.True(t, ok, "structure %s has no cubiomes type", kind.ID)
	}
}

func TestNew_UnknownVersion(t *testing.T) {
	_, err := New(domain.WorldSettings{GeneratorVersion: "banana", Seed: 1})

	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
}

func TestNewFactory_UnknownVersion(t *testing.T) {
	_, err := NewFactory().NewOracle(domain.WorldSettings{GeneratorVersion: "banana"})

	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
}
