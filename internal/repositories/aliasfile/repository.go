package aliasfile

import (
	"fmt"

	"github.com/AntonioJCosta/ali/internal/adapters/jsoncodec"
	"github.com/AntonioJCosta/ali/internal/core/domain/alias"
	"github.com/AntonioJCosta/ali/internal/core/ports"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// JSONStoreRepository keeps the alias store in a JSON file.
type JSONStoreRepository struct {
	fs            afero.Fs
	path          string
	initIfMissing bool
	logger        *zap.Logger
}

// NewJSONStoreRepository creates a repository for the store file at path.
// With initIfMissing, a store file that does not exist yet loads as an empty store.
func NewJSONStoreRepository(fs afero.Fs, path string, initIfMissing bool, logger *zap.Logger) (ports.AliasRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("alias store path cannot be empty")
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONStoreRepository{
		fs:            fs,
		path:          path,
		initIfMissing: initIfMissing,
		logger:        logger,
	}, nil
}

// Load implements the ports.AliasRepository interface.
func (r *JSONStoreRepository) Load() (*alias.Store, error) {
	if r.initIfMissing {
		if _, err := r.fs.Stat(r.path); isNotExist(err) {
			r.logger.Debug("alias store not found, starting empty", zap.String("path", r.path))
			return alias.NewStore(), nil
		}
	}

	doc, err := ReadDocument(r.fs, r.path)
	if err != nil {
		return nil, err
	}
	store, err := jsoncodec.DecodeStore(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.path, err)
	}
	r.logger.Debug("loaded alias store", zap.String("path", r.path), zap.Int("aliases", store.Len()))
	return store, nil
}

// Save implements the ports.AliasRepository interface.
func (r *JSONStoreRepository) Save(s *alias.Store) error {
	if err := WriteDocument(r.fs, r.path, jsoncodec.EncodeStore(s)); err != nil {
		return fmt.Errorf("failed to save alias store: %w", err)
	}
	r.logger.Debug("saved alias store", zap.String("path", r.path), zap.Int("aliases", s.Len()))
	return nil
}

// StorePath implements the ports.AliasRepository interface.
func (r *JSONStoreRepository) StorePath() string {
	return r.path
}
