package salesapi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persiste o token de sessão entre execuções do serviço
// (equivalente ao localStorage do frontend original, com uma chave fixa).
type TokenStore interface {
	// Load devolve o token persistido, ou "" se não houver.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore guarda o token em um arquivo com permissão 0600.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore cria o store apontando para path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load lê o token do arquivo. Arquivo inexistente não é erro.
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("token store: ler %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save grava o token, criando o diretório se necessário.
func (s *FileTokenStore) Save(token string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("token store: criar diretório: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("token store: gravar %s: %w", s.path, err)
	}
	return nil
}

// Clear remove o arquivo do token. Arquivo inexistente não é erro.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("token store: remover %s: %w", s.path, err)
	}
	return nil
}

// MemoryTokenStore mantém o token apenas em memória. Útil em testes e em
// ambientes onde a sessão não deve sobreviver a um restart.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore cria o store vazio.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
