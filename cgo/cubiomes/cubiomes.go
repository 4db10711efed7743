//go:build cgo && cubiomes

package cubiomes

/*
#cgo CFLAGS: -O2
#cgo LDFLAGS: -lcubiomes -lm

#include <stdlib.h>
#include <string.h>
#include <stdint.h>
#include "cubiomes/finders.h"
#include "cubiomes/util.h"

#define MCM_MAX_HITS 256
#define MCM_BIOME_STEP 64
#define MCM_BIOME_SPACING 512

typedef struct { int x; int z; } mcm_hit;

static int mcm_structure_type(const char *name) {
	static const struct { const char *name; int type; } table[] = {
		{"Desert_Pyramid", Desert_Pyramid}, {"Jungle_Temple", Jungle_Temple},
		{"Swamp_Hut", Swamp_Hut}, {"Igloo", Igloo}, {"Village", Village},
		{"Ocean_Ruin", Ocean_Ruin}, {"Shipwreck", Shipwreck}, {"Monument", Monument},
		{"Mansion", Mansion}, {"Outpost", Outpost}, {"Ruined_Portal", Ruined_Portal},
		{"Ancient_City", Ancient_City}, {"Trail_Ruins", Trail_Ruins},
		{"Trial_Chambers", Trial_Chambers}, {"Treasure", Treasure},
		{"Desert_Well", Desert_Well}, {"Geode", Geode}, {"Fortress", Fortress},
		{"Bastion", Bastion}, {"End_City", End_City},
	};
	for (size_t i = 0; i < sizeof(table) / sizeof(table[0]); i++) {
		if (strcmp(table[i].name, name) == 0) return table[i].type;
	}
	return -1;
}

static int mcm_biome_id(int mc, const char *name) {
	for (int id = 0; id < 256; id++) {
		const char *s = biome2str(mc, id);
		if (s != NULL && strcmp(s, name) == 0) return id;
	}
	return -1;
}

static int mcm_floordiv(int a, int b) {
	return a >= 0 ? a / b : -((-a + b - 1) / b);
}

// Returns the number of hits written, or -1 if the structure is unknown.
static int mcm_find_structures(int mc, int64_t seed, int dim, const char *name,
		int x, int z, int radius, mcm_hit *out) {
	int type = mcm_structure_type(name);
	if (type < 0) return -1;

	StructureConfig sconf;
	if (!getStructureConfig(type, mc, &sconf)) return 0;
	if (sconf.dim != dim) return 0;

	Generator g;
	setupGenerator(&g, mc, 0);
	applySeed(&g, dim, (uint64_t)seed);

	int size = sconf.regionSize * 16;
	int rx0 = mcm_floordiv(x - radius, size), rx1 = mcm_floordiv(x + radius, size);
	int rz0 = mcm_floordiv(z - radius, size), rz1 = mcm_floordiv(z + radius, size);
	int n = 0;
	for (int rz = rz0; rz <= rz1 && n < MCM_MAX_HITS; rz++) {
		for (int rx = rx0; rx <= rx1 && n < MCM_MAX_HITS; rx++) {
			Pos p;
			if (!getStructurePos(type, mc, (uint64_t)seed, rx, rz, &p)) continue;
			if (abs(p.x - x) > radius || abs(p.z - z) > radius) continue;
			if (!isViableStructurePos(type, &g, p.x, p.z, 0)) continue;
			out[n].x = p.x;
			out[n].z = p.z;
			n++;
		}
	}
	return n;
}

// Returns the number of hits written, or -1 if the biome is unknown.
static int mcm_find_biomes(int mc, int64_t seed, int dim, const char *name,
		int x, int y, int z, int radius, mcm_hit *out) {
	int biome = mcm_biome_id(mc, name);
	if (biome < 0) return -1;

	Generator g;
	setupGenerator(&g, mc, 0);
	applySeed(&g, dim, (uint64_t)seed);

	int n = 0;
	for (int bz = z - radius; bz <= z + radius && n < MCM_MAX_HITS; bz += MCM_BIOME_STEP) {
		for (int bx = x - radius; bx <= x + radius && n < MCM_MAX_HITS; bx += MCM_BIOME_STEP) {
			if (getBiomeAt(&g, 4, bx >> 2, y >> 2, bz >> 2) != biome) continue;
			int near = 0;
			for (int i = 0; i < n; i++) {
				if (abs(out[i].x - bx) + abs(out[i].z - bz) < MCM_BIOME_SPACING) {
					near = 1;
					break;
				}
			}
			if (near) continue;
			out[n].x = bx;
			out[n].z = bz;
			n++;
		}
	}
	return n;
}

static int mcm_version(const char *s) {
	return str2mc(s);
}
*/
import "C"

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
)

const maxHits = C.MCM_MAX_HITS

// Ensure Oracle implements the interface.
var _ driven.WorldOracle = (*Oracle)(nil)

// Oracle answers structure and biome queries for one seed and version.
// Each call sets up its own generator, so an Oracle is safe for concurrent use.
type Oracle struct {
	mc   C.int
	seed int64
}

// New creates an oracle for the given world settings.
func New(settings domain.WorldSettings) (*Oracle, error) {
	key := versionKey(settings.GeneratorVersion)
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	mc := C.mcm_version(ckey)
	if mc <= C.MC_UNDEF {
		return nil, fmt.Errorf("generator version %q: %w", settings.GeneratorVersion, domain.ErrOracleUnavailable)
	}
	return &Oracle{mc: mc, seed: settings.Seed}, nil
}

// NewFactory returns an OracleFactory backed by cubiomes.
func NewFactory() driven.OracleFactory {
	return driven.OracleFactoryFunc(func(settings domain.WorldSettings) (driven.WorldOracle, error) {
		return New(settings)
	})
}

// Available reports whether this build can construct oracles.
func Available() bool {
	return true
}

// FindStructures locates structures of a kind within radius blocks of origin.
func (o *Oracle) FindStructures(
	_ context.Context, kind string, origin domain.Point3, radius int32, dim domain.Dimension,
) ([]domain.Hit, error) {
	name, ok := structureTypes[kind]
	if !ok {
		return nil, nil
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	out := make([]C.mcm_hit, maxHits)
	n := C.mcm_find_structures(o.mc, C.int64_t(o.seed), dimension(dim), cname,
		C.int(origin.X), C.int(origin.Z), C.int(radius), &out[0])
	if n < 0 {
		return nil, fmt.Errorf("cubiomes: unknown structure %s: %w", kind, domain.ErrInvalidInput)
	}
	return hits(out[:n]), nil
}

// FindBiomes locates biomes of a kind within radius blocks of origin.
func (o *Oracle) FindBiomes(
	_ context.Context, kind string, origin domain.Point3, radius int32, dim domain.Dimension,
) ([]domain.Hit, error) {
	cname := C.CString(kind)
	defer C.free(unsafe.Pointer(cname))

	out := make([]C.mcm_hit, maxHits)
	n := C.mcm_find_biomes(o.mc, C.int64_t(o.seed), dimension(dim), cname,
		C.int(origin.X), C.int(origin.Y), C.int(origin.Z), C.int(radius), &out[0])
	if n < 0 {
		return nil, fmt.Errorf("cubiomes: unknown biome %s: %w", kind, domain.ErrInvalidInput)
	}
	return hits(out[:n]), nil
}

func dimension(dim domain.Dimension) C.int {
	switch dim {
	case domain.DimensionNether:
		return C.DIM_NETHER
	case domain.DimensionEnd:
		return C.DIM_END
	default:
		return C.DIM_OVERWORLD
	}
}

func hits(out []C.mcm_hit) []domain.Hit {
	result := make([]domain.Hit, len(out))
	for i, h := range out {
		result[i] = domain.Hit{X: int32(h.x), Z: int32(h.z)}
	}
	return result
}
