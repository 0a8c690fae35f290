package movement

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/ports"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
)

// Mensajes de la pantalla de movimientos, los mismos que mostraba el front.
const (
	msgDuplicado     = "Ese vino ya fue agregado a la lista"
	msgCreado        = "Movimiento creado correctamente"
	msgErrorUsuarios = "Error al cargar usuarios"
)

// Session es la instancia de la pantalla "Nuevo Movimiento": dueña exclusiva
// de un borrador, de la carga (cancelable) del listado de usuarios y del envío.
// Open la crea, Close la descarta; toda operación posterior a Close falla con
// ErrSessionClosed. Un mutex serializa las mutaciones: el equivalente del hilo
// único de eventos del navegador.
type Session struct {
	ID string

	movements ports.MovementAPI
	directory ports.PartyDirectory
	token     string

	ctx    context.Context
	cancel context.CancelFunc
	now    func() time.Time

	mu         sync.Mutex
	closed     bool
	draft      *entity.MovementDraft
	wineCode   string // input temporal del código, se limpia al agregar
	parties    []entity.Party
	loading    bool
	submitting bool
	errMsg     string
	successMsg string
	lastActive time.Time
}

func newSession(id, token, initialType string, movements ports.MovementAPI, directory ports.PartyDirectory, now func() time.Time) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		ID:         id,
		movements:  movements,
		directory:  directory,
		token:      token,
		ctx:        ctx,
		cancel:     cancel,
		now:        now,
		draft:      NewDraft(initialType),
		loading:    true,
		lastActive: now(),
	}
	go s.loadParties()
	return s
}

// loadParties trae el listado de usuarios para la atribución opcional de
// cliente. Una sola carga al abrir la sesión, sin reintentos. Si la sesión se
// cerró antes de que resuelva, la respuesta se descarta sin tocar estado: la
// cancelación es un desenlace esperado, no un error.
func (s *Session) loadParties() {
	parties, err := s.directory.ListUsers(s.ctx, s.token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.ctx.Err() != nil {
		return
	}
	s.loading = false
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.errMsg = errorText(err, msgErrorUsuarios)
		return
	}
	s.parties = parties
}

// AddItem intenta agregar el código tecleado a la lista del borrador.
// Replica la pantalla original: un código en blanco es un no-op total; en
// cualquier otro intento se limpian los mensajes previos y el input, y un
// duplicado deja la lista intacta con el mensaje de rechazo visible.
func (s *Session) AddItem(rawCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionClosed
	}
	s.touch()
	s.wineCode = rawCode

	err := AddItem(s.draft, rawCode)
	if errors.Is(err, domain.ErrEmptyCode) {
		return err
	}
	s.errMsg = ""
	s.successMsg = ""
	s.wineCode = ""
	if errors.Is(err, domain.ErrDuplicateItem) {
		s.errMsg = msgDuplicado
	}
	return err
}

// UpdateQuantity edita la cantidad del renglón index a partir del valor crudo.
// Un valor inválido se descarta sin mensaje en pantalla (el error solo llega
// al caller HTTP); "" deja el renglón en el centinela vacío.
func (s *Session) UpdateQuantity(index int, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionClosed
	}
	s.touch()
	return UpdateQuantity(s.draft, index, raw)
}

// RemoveItem quita el renglón index, sin confirmación.
func (s *Session) RemoveItem(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionClosed
	}
	s.touch()
	return RemoveItem(s.draft, index)
}

// Update cambia tipo, comentario o atribución de cliente del borrador.
func (s *Session) Update(in dto.UpdateDraftRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionClosed
	}
	s.touch()
	if in.Type != nil {
		t := strings.ToUpper(strings.TrimSpace(*in.Type))
		if t != entity.MovementTypeCompra && t != entity.MovementTypeVenta {
			return domain.ErrInvalidInput
		}
		s.draft.Type = t
	}
	if in.Comment != nil {
		s.draft.Comment = *in.Comment
	}
	if in.ClearClient {
		s.draft.ClientID = nil
	} else if in.ClientID != nil {
		id := *in.ClientID
		s.draft.ClientID = &id
	}
	return nil
}

// canSubmitLocked evalúa la compuerta de envío. Requiere s.mu tomado.
func (s *Session) canSubmitLocked() bool {
	return !s.submitting &&
		len(s.draft.Items) > 0 &&
		AllQuantitiesValid(s.draft) &&
		s.draft.Type != ""
}

// buildPayloadLocked arma el body para POST /api/movements/: arrays paralelos
// en el orden de la lista, comentario normalizado a null y el nombre del
// cliente desnormalizado junto al id. Requiere s.mu tomado.
func (s *Session) buildPayloadLocked() dto.CreateMovementPayload {
	codes := make([]string, 0, len(s.draft.Items))
	quantities := make([]int, 0, len(s.draft.Items))
	for _, it := range s.draft.Items {
		codes = append(codes, it.WineCode)
		quantities = append(quantities, it.Quantity)
	}

	var comment *string
	if c := strings.TrimSpace(s.draft.Comment); c != "" {
		comment = &c
	}

	var clientID *int64
	var clientName *string
	if s.draft.ClientID != nil {
		id := *s.draft.ClientID
		clientID = &id
		for _, p := range s.parties {
			if p.ID == id {
				if name := p.DisplayName(); name != "" {
					clientName = &name
				}
				break
			}
		}
	}

	return dto.CreateMovementPayload{
		WineID:          codes,
		Quantity:        quantities,
		Type:            s.draft.Type,
		Comment:         comment,
		ClientID:        clientID,
		NombreDeCliente: clientName,
	}
}

// Submit valida la compuerta y envía el movimiento al upstream. Con éxito el
// borrador completo vuelve al estado inicial (el tipo seleccionado se
// conserva); si falla, el borrador queda intacto para reintentar y el mensaje
// de error anterior se reemplaza por el nuevo. La bandera submitting impide el
// doble envío: un segundo intento en vuelo devuelve ErrSubmitInFlight, no se
// encola.
func (s *Session) Submit(ctx context.Context) (*entity.Movement, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, domain.ErrSessionClosed
	}
	if s.submitting {
		s.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}
	if !s.canSubmitLocked() {
		s.mu.Unlock()
		return nil, domain.ErrDraftNotReady
	}
	s.touch()
	s.submitting = true
	s.errMsg = ""
	s.successMsg = ""
	payload := s.buildPayloadLocked()
	s.mu.Unlock()

	created, err := s.movements.CreateMovement(ctx, s.token, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if s.closed {
		return nil, domain.ErrSessionClosed
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.errMsg = errorText(err, "Error al crear movimiento")
		}
		return nil, err
	}

	s.successMsg = msgCreado
	s.draft = NewDraft(s.draft.Type)
	s.wineCode = ""
	return created, nil
}

// State devuelve una foto del estado de la sesión para renderizar la pantalla.
func (s *Session) State() dto.SessionStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]dto.LineItemDTO, 0, len(s.draft.Items))
	for _, it := range s.draft.Items {
		q := ""
		if it.Quantity != entity.QuantityEmpty {
			q = strconv.Itoa(it.Quantity)
		}
		items = append(items, dto.LineItemDTO{WineCode: it.WineCode, Quantity: q})
	}

	parties := make([]dto.PartyDTO, 0, len(s.parties))
	for _, p := range s.parties {
		name := p.DisplayName()
		if name == "" {
			name = "#" + strconv.FormatInt(p.ID, 10)
		}
		parties = append(parties, dto.PartyDTO{ID: p.ID, DisplayName: name})
	}

	return dto.SessionStateResponse{
		SessionID:      s.ID,
		Type:           s.draft.Type,
		WineCode:       s.wineCode,
		Items:          items,
		ClientID:       s.draft.ClientID,
		Comment:        s.draft.Comment,
		Parties:        parties,
		PartiesLoading: s.loading,
		CanSubmit:      s.canSubmitLocked(),
		Submitting:     s.submitting,
		Error:          s.errMsg,
		Success:        s.successMsg,
	}
}

// OwnedBy indica si la sesión fue abierta con el token dado. Una sesión es
// propiedad exclusiva de quien la abrió; nadie más puede mutarla.
func (s *Session) OwnedBy(token string) bool {
	return s.token == token
}

// close cancela la carga en vuelo y marca la sesión como descartada.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
}

// idleSince devuelve el último instante de actividad.
func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// touch registra actividad. Requiere s.mu tomado.
func (s *Session) touch() {
	s.lastActive = s.now()
}

// errorText devuelve el mensaje del error o un fallback si está vacío.
func errorText(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
