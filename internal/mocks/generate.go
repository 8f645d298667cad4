// Package mocks provides generated mock implementations for the pipeline's
// collaborator ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	source := mocks.NewMockItemSource(ctrl)
//	source.EXPECT().FetchItemsNeedingEnrichment(gomock.Any(), 20).Return(items, nil)
package mocks

// Generate mocks for the collaborator ports from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_mock.go github.com/curiogoods/catalog-api/internal/ports ItemSource,CopyCache,TextGenerator,IdentityResolver
