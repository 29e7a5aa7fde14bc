// Package session mantém o estado de autenticação do operador do backoffice.
// O Manager é um objeto explícito criado no main e injetado nas camadas que
// precisam dele, com ciclo de vida Restore/Close — não há estado global.
package session

import (
	"context"
	"crypto/subtle"
	"sync"

	"github.com/google/uuid"

	"github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"
	"github.com/WallyssonSousa/seller-backoffice/internal/infrastructure/salesapi"
	"github.com/WallyssonSousa/seller-backoffice/pkg/logger"
)

// State estados possíveis da sessão.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Manager sessão do operador: usuário corrente e operações de auth delegadas
// ao cliente da API de vendas. Operações concorrentes não são deduplicadas;
// é responsabilidade do chamador desabilitar o controle enquanto uma chamada
// está em andamento.
type Manager struct {
	client *salesapi.Client
	log    *logger.Logger

	mu    sync.RWMutex // protege state/user/id
	state State
	user  *entity.Seller
	id    string // uuid da sessão, para correlação nos logs
}

// NewManager constrói o manager no estado não autenticado.
func NewManager(client *salesapi.Client, log *logger.Logger) *Manager {
	return &Manager{
		client: client,
		log:    log,
		state:  StateUnauthenticated,
	}
}

// Restore inicializa a sessão a partir do token persistido, se houver.
// O backend não expõe endpoint de perfil, então o usuário restaurado é um
// placeholder até o próximo login — a lacuna fica registrada no log em vez
// de silenciosa.
func (m *Manager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client.Token() == "" {
		m.state = StateUnauthenticated
		return
	}
	m.state = StateAuthenticated
	m.user = placeholderUser("")
	m.id = uuid.New().String()
	m.log.Warn().
		Str("session_id", m.id).
		Msg("sessão restaurada do token persistido; perfil do usuário é placeholder até novo login")
}

// Login autentica no backend e, em caso de sucesso, sintetiza o usuário local
// a partir do email do formulário (o backend não devolve o perfil no login).
func (m *Manager) Login(ctx context.Context, email, password string) (*entity.Seller, string, error) {
	token, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.log.Warn().Str("email", email).Err(err).Msg("login recusado")
		return nil, "", err
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = placeholderUser(email)
	m.id = uuid.New().String()
	user := *m.user
	id := m.id
	m.mu.Unlock()

	m.log.Info().Str("session_id", id).Str("email", email).Msg("login efetuado")
	return &user, token, nil
}

// Logout limpa o token e o estado local. Nenhuma chamada é feita ao backend.
func (m *Manager) Logout() {
	m.client.Logout()

	m.mu.Lock()
	id := m.id
	m.state = StateUnauthenticated
	m.user = nil
	m.id = ""
	m.mu.Unlock()

	m.log.Info().Str("session_id", id).Msg("sessão encerrada")
}

// Register delega o cadastro ao backend. Não autentica: o chamador segue
// para a etapa de verificação do celular.
func (m *Manager) Register(ctx context.Context, in salesapi.RegisterInput) error {
	return m.client.Register(ctx, in)
}

// Verify delega a verificação do código. Também não autentica; o chamador
// segue para o login.
func (m *Manager) Verify(ctx context.Context, celular, code string) error {
	return m.client.Verify(ctx, celular, code)
}

// Authenticated informa se há sessão ativa.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateAuthenticated
}

// User devolve uma cópia do usuário corrente, ou nil.
func (m *Manager) User() *entity.Seller {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// ValidateBearer compara o token apresentado com o da sessão ativa em tempo
// constante.
func (m *Manager) ValidateBearer(token string) bool {
	if token == "" || !m.Authenticated() {
		return false
	}
	current := m.client.Token()
	if current == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(current)) == 1
}

// Close libera o estado em memória no desligamento. O token persistido é
// mantido para a próxima execução (desligar não é logout).
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateUnauthenticated
	m.user = nil
	m.id = ""
}

// placeholderUser sintetiza o registro local do usuário. Campos além do
// email ficam vazios até que o backend exponha um endpoint de perfil.
func placeholderUser(email string) *entity.Seller {
	return &entity.Seller{
		ID:    1,
		Name:  "Usuário",
		Email: email,
	}
}
