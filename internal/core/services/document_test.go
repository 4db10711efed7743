package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/storage/memory"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
)

const v1Manifest = `{
  "mcVersion": "1.18.2",
  "name": "Old World",
  "seed": 42,
  "pins": [
    {"name": "Spawn", "position": [0, 0], "color": "red", "tags": ["stray"]},
    {"name": "Mine", "position": [12, -40], "images": ["mine.png"]}
  ]
}`

func newTestDocumentService(t *testing.T) (*DocumentService, *memory.PackageStore) {
	t.Helper()
	store := memory.NewPackageStore()
	service := NewDocumentService(store)
	service.assetName = func(ext string) string { return "asset." + ext }
	return service, store
}

func createWorld(t *testing.T, service *DocumentService) {
	t.Helper()
	_, err := service.Create(context.Background(), "world", "Test World",
		domain.WorldSettings{GeneratorVersion: "1.21.3", Seed: 123})
	require.NoError(t, err)
}

func TestDocumentService_CreateOpen(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestDocumentService(t)

	doc, err := service.Create(ctx, "world", "Test World", domain.WorldSettings{GeneratorVersion: "1.20.1", Seed: -7})
	require.NoError(t, err)
	assert.Equal(t, domain.LatestSchemaVersion, doc.Manifest.SchemaVersion)

	opened, err := service.Open(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, "Test World", opened.Manifest.Name)
	assert.Equal(t, domain.WorldSettings{GeneratorVersion: "1.20.1", Seed: -7}, opened.Manifest.World)
	assert.Empty(t, opened.Manifest.Pins)
}

func TestDocumentService_CreateExisting(t *testing.T) {
	service, _ := newTestDocumentService(t)
	createWorld(t, service)

	_, err := service.Create(context.Background(), "world", "Again", domain.WorldSettings{})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestDocumentService_CreateRequiresName(t *testing.T) {
	service, _ := newTestDocumentService(t)

	_, err := service.Create(context.Background(), "world", " ", domain.WorldSettings{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_CreateExistsError(t *testing.T) {
	storeErr := errors.New("disk on fire")
	service := NewDocumentService(&failingPackageStore{PackageStore: memory.NewPackageStore(), existsErr: storeErr})

	_, err := service.Create(context.Background(), "world", "Test", domain.WorldSettings{})

	assert.ErrorIs(t, err, storeErr)
}

func TestDocumentService_OpenMissing(t *testing.T) {
	service, _ := newTestDocumentService(t)

	_, err := service.Open(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_OpenMigratesV1(t *testing.T) {
	ctx := context.Background()
	service, store := newTestDocumentService(t)
	require.NoError(t, store.Write(ctx, "old", &driven.Package{
		Manifest: []byte(v1Manifest),
		Assets:   map[string][]byte{"mine.png": {1, 2}},
	}))

	doc, err := service.Open(ctx, "old")

	require.NoError(t, err)
	assert.Equal(t, 2, doc.Manifest.SchemaVersion)
	assert.Equal(t, domain.WorldSettings{GeneratorVersion: "1.18.2", Seed: 42}, doc.Manifest.World)
	require.Len(t, doc.Manifest.Pins, 2)
	assert.Empty(t, doc.Manifest.Pins[0].Tags)
	assert.Equal(t, domain.PinColorRed, doc.Manifest.Pins[0].Color)
	assert.Equal(t, domain.DefaultPinColor, doc.Manifest.Pins[1].Color)
	assert.Empty(t, doc.AllTags())
}

func TestDocumentService_OpenMalformed(t *testing.T) {
	ctx := context.Background()
	service, store := newTestDocumentService(t)
	require.NoError(t, store.Write(ctx, "bad", &driven.Package{Manifest: []byte(`{"manifestVersion": 9}`)}))
	require.NoError(t, store.Write(ctx, "junk", &driven.Package{Manifest: []byte(`not json`)}))

	_, err := service.Open(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrUnsupportedVersion)

	_, err = service.Open(ctx, "junk")
	assert.ErrorIs(t, err, domain.ErrMalformed)
}

func TestDocumentService_SaveUpgradesOnDisk(t *testing.T) {
	ctx := context.Background()
	service, store := newTestDocumentService(t)
	require.NoError(t, store.Write(ctx, "old", &driven.Package{
		Manifest: []byte(v1Manifest),
		Assets:   map[string][]byte{"mine.png": {1, 2}},
	}))

	doc, err := service.Open(ctx, "old")
	require.NoError(t, err)
	require.NoError(t, service.Save(ctx, "old", doc))

	pkg, err := store.Read(ctx, "old")
	require.NoError(t, err)
	assert.Contains(t, string(pkg.Manifest), `"manifestVersion": 2`)
	assert.NotContains(t, string(pkg.Manifest), "mcVersion")
	assert.NotContains(t, string(pkg.Manifest), "stray")
}

func TestDocumentService_SaveRejectsDanglingAsset(t *testing.T) {
	service, _ := newTestDocumentService(t)
	doc := testDocument(domain.Pin{Name: "Cave", Images: []string{"gone.png"}})

	err := service.Save(context.Background(), "world", doc)

	assert.ErrorIs(t, err, domain.ErrDanglingAsset)
}

func TestDocumentService_SaveNil(t *testing.T) {
	service, _ := newTestDocumentService(t)

	err := service.Save(context.Background(), "world", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_SaveWriteError(t *testing.T) {
	writeErr := errors.New("read-only")
	service := NewDocumentService(&failingPackageStore{PackageStore: memory.NewPackageStore(), writeErr: writeErr})

	err := service.Save(context.Background(), "world", testDocument())

	assert.ErrorIs(t, err, writeErr)
}

func TestDocumentService_AddPin(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestDocumentService(t)
	createWorld(t, service)

	first, err := service.AddPin(ctx, "world", domain.NewPin(domain.Point{X: 1}, "Home"))
	require.NoError(t, err)
	second, err := service.AddPin(ctx, "world", domain.Pin{Name: "Farm", Color: domain.PinColorGreen})
	require.NoError(t, err)

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	doc, err := service.Open(ctx, "world")
	require.NoError(t, err)
	require.Len(t, doc.Manifest.Pins, 2)
	assert.Equal(t, domain.PinColorGreen, doc.Manifest.Pins[1].Color)
}

func TestDocumentService_AddPinRequiresName(t *testing.T) {
	service, _ := newTestDocumentService(t)
	createWorld(t, service)

	_, err := service.AddPin(context.Background(), "world", domain.Pin{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_AttachAndRemove(t *testing.T) {
	ctx := context.Background()
	service, store := newTestDocumentService(t)
	createWorld(t, service)
	_, err := service.AddPin(ctx, "world", domain.NewPin(domain.Point{}, "A"))
	require.NoError(t, err)
	_, err = service.AddPin(ctx, "world", domain.NewPin(domain.Point{}, "B"))
	require.NoError(t, err)

	name, err := service.AttachImage(ctx, "world", 0, ".PNG", []byte{1})
	require.NoError(t, err)
	assert.Equal(t, "asset.png", name)

	pkg, err := store.Read(ctx, "world")
	require.NoError(t, err)
	assert.Contains(t, pkg.Assets, "asset.png")

	require.NoError(t, service.RemovePins(ctx, "world", []int{0}))

	pkg, err = store.Read(ctx, "world")
	require.NoError(t, err)
	assert.Empty(t, pkg.Assets)

	doc, err := service.Open(ctx, "world")
	require.NoError(t, err)
	require.Len(t, doc.Manifest.Pins, 1)
	assert.Equal(t, "B", doc.Manifest.Pins[0].Name)
}

func TestDocumentService_AttachImageValidation(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestDocumentService(t)
	createWorld(t, service)

	_, err := service.AttachImage(ctx, "world", 0, "png", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.AttachImage(ctx, "world", 3, "png", []byte{1})
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestDocumentService_RemovePinsOutOfRangeWritesNothing(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestDocumentService(t)
	createWorld(t, service)
	_, err := service.AddPin(ctx, "world", domain.NewPin(domain.Point{}, "A"))
	require.NoError(t, err)

	err = service.RemovePins(ctx, "world", []int{0, 5})
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	doc, err := service.Open(ctx, "world")
	require.NoError(t, err)
	assert.Len(t, doc.Manifest.Pins, 1)
}

func TestDocumentService_UpdatePin(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestDocumentService(t)
	createWorld(t, service)
	_, err := service.AddPin(ctx, "world", domain.NewPin(domain.Point{}, "A"))
	require.NoError(t, err)

	updated := domain.Pin{Name: "Renamed", Position: domain.Point{X: 9, Y: 9}, Tags: []string{"base"}}
	require.NoError(t, service.UpdatePin(ctx, "world", 0, updated))

	doc, err := service.Open(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", doc.Manifest.Pins[0].Name)
	assert.Equal(t, domain.DefaultPinColor, doc.Manifest.Pins[0].Color)

	tags, err := service.Tags(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, []string{"base"}, tags)

	assert.ErrorIs(t, service.UpdatePin(ctx, "world", 0, domain.Pin{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.UpdatePin(ctx, "world", 1, updated), domain.ErrIndexOutOfRange)
}

func TestDocumentService_EditWorld(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestDocumentService(t)
	createWorld(t, service)

	settings := domain.WorldSettings{GeneratorVersion: "1.19.4", Seed: 99}
	require.NoError(t, service.EditWorld(ctx, "world", settings))

	doc, err := service.Open(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, settings, doc.Manifest.World)
}

func TestDocumentService_RecentLocations(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestDocumentService(t)
	createWorld(t, service)

	for i := 0; i < domain.MaxRecentLocations+2; i++ {
		current, err := service.PushRecentLocation(ctx, "world", domain.Point{X: float64(i)})
		require.NoError(t, err)
		assert.Equal(t, domain.Point{X: float64(i)}, current)
	}

	doc, err := service.Open(ctx, "world")
	require.NoError(t, err)
	require.Len(t, doc.Manifest.RecentLocations, domain.MaxRecentLocations)
	assert.Equal(t, domain.Point{X: 2}, doc.Manifest.RecentLocations[0])

	require.NoError(t, service.RemoveRecentLocation(ctx, "world", 0))
	doc, err = service.Open(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 3}, doc.Manifest.RecentLocations[0])

	assert.ErrorIs(t, service.RemoveRecentLocation(ctx, "world", 99), domain.ErrIndexOutOfRange)
}

func TestDocumentService_List(t *testing.T) {
	service, _ := newTestDocumentService(t)
	ctx := context.Background()

	locations, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations)

	for _, location := range []string{"b-world", "a-world"} {
		_, err := service.Create(ctx, location, "World", domain.WorldSettings{GeneratorVersion: "1.21.3"})
		require.NoError(t, err)
	}

	locations, err = service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-world", "b-world"}, locations)
}

func TestNewAssetName(t *testing.T) {
	a := newAssetName("png")
	b := newAssetName(".png")
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^[0-9a-f-]{36}\.png$`, a)
	assert.Regexp(t, `^[0-9a-f-]{36}$`, newAssetName(""))
}
