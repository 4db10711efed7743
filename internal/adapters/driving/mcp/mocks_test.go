package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
	"github.com/alicerunsonfedora/mcmaps/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result domain.SearchResult
	err    error

	query string
	opts  domain.SearchOptions
}

var _ driving.SearchService = (*mockSearchService)(nil)

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	_ *domain.Document,
	opts domain.SearchOptions,
) (domain.SearchResult, error) {
	m.query = query
	m.opts = opts
	return m.result, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
// Only Open and AddPin have behaviour; the rest succeed without effect.
type mockDocumentService struct {
	document *domain.Document
	err      error

	location string
	added    []domain.Pin
}

var _ driving.DocumentService = (*mockDocumentService)(nil)

func (m *mockDocumentService) Create(
	_ context.Context, _, _ string, _ domain.WorldSettings,
) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Open(_ context.Context, location string) (*domain.Document, error) {
	m.location = location
	if m.err != nil {
		return nil, m.err
	}
	return m.document, nil
}

func (m *mockDocumentService) Save(_ context.Context, _ string, _ *domain.Document) error {
	return m.err
}

func (m *mockDocumentService) AddPin(_ context.Context, location string, pin domain.Pin) (int, error) {
	m.location = location
	if m.err != nil {
		return 0, m.err
	}
	m.added = append(m.added, pin)
	return len(m.document.Manifest.Pins) + len(m.added) - 1, nil
}

func (m *mockDocumentService) RemovePins(_ context.Context, _ string, _ []int) error {
	return m.err
}

func (m *mockDocumentService) UpdatePin(_ context.Context, _ string, _ int, _ domain.Pin) error {
	return m.err
}

func (m *mockDocumentService) AttachImage(_ context.Context, _ string, _ int, _ string, _ []byte) (string, error) {
	return "", m.err
}

func (m *mockDocumentService) EditWorld(_ context.Context, _ string, _ domain.WorldSettings) error {
	return m.err
}

func (m *mockDocumentService) PushRecentLocation(_ context.Context, _ string, p domain.Point) (domain.Point, error) {
	return p, m.err
}

func (m *mockDocumentService) RemoveRecentLocation(_ context.Context, _ string, _ int) error {
	return m.err
}

func (m *mockDocumentService) Tags(_ context.Context, _ string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.document.AllTags(), nil
}

func (m *mockDocumentService) List(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []string{m.location}, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	radius    int32
	dimension domain.Dimension
}

var _ driving.SettingsService = (*mockSettingsService)(nil)

func (m *mockSettingsService) StructureRadius() int32 { return m.radius }

func (m *mockSettingsService) SetStructureRadius(radius int32) error {
	m.radius = radius
	return nil
}

func (m *mockSettingsService) Dimension() domain.Dimension { return m.dimension }

func (m *mockSettingsService) SetDimension(dim domain.Dimension) error {
	m.dimension = dim
	return nil
}

func (m *mockSettingsService) LibraryPath() string         { return "" }
func (m *mockSettingsService) SetLibraryPath(string) error { return nil }

func (m *mockSettingsService) SearchOptions(origin domain.Point3) domain.SearchOptions {
	return domain.SearchOptions{
		Origin:          origin,
		Dimension:       m.dimension,
		StructureRadius: m.radius,
	}
}

// testDocument builds a v2 document with three tagged pins and one recent location.
func testDocument() *domain.Document {
	m := domain.SampleManifest()
	m.Pins = []domain.Pin{
		{Position: domain.Point{X: 10, Y: 20}, Name: "Base", Color: domain.PinColorRed, Tags: []string{"home"}},
		{Position: domain.Point{X: -300, Y: 40}, Name: "Mine", Color: domain.PinColorGray, Tags: []string{"work"}},
		{Position: domain.Point{X: 5, Y: 5}, Name: "Farm", Color: domain.PinColorGreen, Tags: []string{"home", "food"}},
	}
	m.RecentLocations = domain.RecentLocations{{X: 100, Y: -50}}
	return domain.NewDocument(m, nil)
}

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	s, err := NewServer(ports, "World.mcmaps")
	require.NoError(t, err)
	return s
}
