package usecase

import (
	"context"
	"strings"

	"github.com/bnema/panedrawer/internal/application/port"
	"github.com/bnema/panedrawer/internal/domain/entity"
)

// GetConfigSchemaUseCase lists the documented configuration keys.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput filters the listing.
type GetConfigSchemaInput struct {
	// Section keeps only keys in the named section (case-insensitive).
	// Empty keeps all.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string
}

// Execute retrieves configuration keys with their metadata, in provider order.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	out := &GetConfigSchemaOutput{Keys: make([]entity.ConfigKeyInfo, 0, len(all))}
	seen := make(map[string]bool)
	for _, k := range all {
		if !seen[k.Section] {
			seen[k.Section] = true
			out.Sections = append(out.Sections, k.Section)
		}
		if input.Section != "" && !strings.EqualFold(k.Section, input.Section) {
			continue
		}
		out.Keys = append(out.Keys, k)
	}
	return out, nil
}
