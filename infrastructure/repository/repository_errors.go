package repository

import "github.com/pkg/errors"

var (
	// ErrStoreUnavailable indica falha de conexão ou consulta ao datastore
	ErrStoreUnavailable = errors.New("datastore de clientes indisponível")

	// ErrArtifactPersistence indica falha ao gravar ou carregar um artefato
	ErrArtifactPersistence = errors.New("falha ao persistir o artefato do modelo")
)
