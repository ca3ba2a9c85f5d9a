package port

import "github.com/bnema/panedrawer/internal/domain/entity"

// ConfigSchemaProvider lists the settings a config file may carry.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
