package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driven/storage/memory"
	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driven"
	"github.com/alicerunsonfedora/mcmaps/internal/core/services"
)

// testLocation is the document seeded by setupTestServices.
const testLocation = "World.mcmap"

// fakeOracle places villages and cherry groves at fixed positions.
type fakeOracle struct{}

func (fakeOracle) FindStructures(
	_ context.Context, kind string, _ domain.Point3, _ int32, _ domain.Dimension,
) ([]domain.Hit, error) {
	if kind != "village" {
		return nil, nil
	}
	return []domain.Hit{{X: -300, Z: 10}, {X: 128, Z: 64}}, nil
}

func (fakeOracle) FindBiomes(
	_ context.Context, kind string, _ domain.Point3, _ int32, _ domain.Dimension,
) ([]domain.Hit, error) {
	if kind != "cherry_grove" {
		return nil, nil
	}
	return []domain.Hit{{X: 500, Z: 500}}, nil
}

// testServices exposes the stores behind the wired services.
type testServices struct {
	packages *memory.PackageStore
	library  *memory.PackageStore
	config   *memory.ConfigStore
}

// setupTestServices wires in-memory services with one seeded document
// and returns a cleanup function restoring the previous wiring.
func setupTestServices() func() {
	cleanup, _ := setupTestServicesWithStores()
	return cleanup
}

func setupTestServicesWithStores() (func(), *testServices) {
	previous := deps

	stores := &testServices{
		packages: memory.NewPackageStore(),
		library:  memory.NewPackageStore(),
		config:   memory.NewConfigStore(),
	}
	oracles := driven.OracleFactoryFunc(func(domain.WorldSettings) (driven.WorldOracle, error) {
		return fakeOracle{}, nil
	})

	documents := services.NewDocumentService(stores.packages)
	SetServices(&Services{
		Search:    services.NewSearchService(oracles),
		Documents: documents,
		Library:   services.NewDocumentService(stores.library),
		Settings:  services.NewSettingsService(stores.config),
	})

	ctx := context.Background()
	if _, err := documents.Create(ctx, testLocation, "Test World",
		domain.WorldSettings{GeneratorVersion: "1.21.3", Seed: 123}); err != nil {
		panic(err)
	}
	spawn := domain.NewPin(domain.Origin, "Spawn")
	base := domain.NewPin(domain.Point{X: 100, Y: -50}, "Base")
	base.Color = domain.PinColorRed
	base.Tags = []string{"home"}
	for _, pin := range []domain.Pin{spawn, base} {
		if _, err := documents.AddPin(ctx, testLocation, pin); err != nil {
			panic(err)
		}
	}

	return func() {
		deps = previous
		resetFlags(rootCmd)
	}, stores
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// openTestDocument reads the seeded document from the package store.
func openTestDocument(t *testing.T) *domain.Document {
	t.Helper()
	doc, err := deps.Documents.Open(context.Background(), testLocation)
	require.NoError(t, err)
	return doc
}
