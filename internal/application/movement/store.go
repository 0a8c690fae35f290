package movement

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/ports"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/pkg/logger"
)

// Store administra las sesiones vivas del flujo de movimientos. Cada sesión
// equivale a una pantalla montada; el janitor cierra las que quedaron
// abandonadas (la pestaña se fue sin cerrar sesión) pasado el TTL de
// inactividad, que es el equivalente del desmontaje por navegación.
type Store struct {
	movements ports.MovementAPI
	directory ports.PartyDirectory
	ttl       time.Duration
	log       *logger.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session

	cron *cron.Cron
}

// NewStore construye el store de sesiones.
func NewStore(movements ports.MovementAPI, directory ports.PartyDirectory, ttl time.Duration, log *logger.Logger) *Store {
	return &Store{
		movements: movements,
		directory: directory,
		ttl:       ttl,
		log:       log,
		now:       time.Now,
		sessions:  make(map[string]*Session),
	}
}

// Open crea una sesión nueva para el token dado, con el tipo inicial que
// llega de la pantalla anterior, y dispara la carga del listado de usuarios.
func (st *Store) Open(token, initialType string) *Session {
	s := newSession(uuid.NewString(), token, initialType, st.movements, st.directory, st.now)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get devuelve la sesión por ID.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Close descarta la sesión: cancela la carga en vuelo y la quita del store.
func (st *Store) Close(id string) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	if ok {
		delete(st.sessions, id)
	}
	st.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.close()
	return nil
}

// Sweep cierra las sesiones sin actividad desde hace más de ttl y devuelve
// cuántas cerró.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	var stale []*Session
	for id, s := range st.sessions {
		if now.Sub(s.idleSince()) > st.ttl {
			stale = append(stale, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range stale {
		s.close()
	}
	return len(stale)
}

// StartJanitor programa el barrido periódico de sesiones abandonadas.
func (st *Store) StartJanitor() {
	if st.cron != nil {
		return
	}
	st.cron = cron.New()
	_, _ = st.cron.AddFunc("@every 1m", func() {
		if n := st.Sweep(st.now()); n > 0 && st.log != nil {
			st.log.Info().Int("cerradas", n).Msg("janitor: sesiones de movimiento abandonadas")
		}
	})
	st.cron.Start()
}

// StopJanitor detiene el barrido (apagado ordenado).
func (st *Store) StopJanitor() {
	if st.cron != nil {
		st.cron.Stop()
	}
}
