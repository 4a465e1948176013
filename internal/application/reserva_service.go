package application

import (
	"fmt"
	"log"
	"time"

	"github.com/Maxito7/hotel_core/internal/domain"
	"github.com/google/uuid"
)

// ReservaService es el punto de entrada único del ciclo de vida de las
// reservas: crea, confirma, cancela y completa reservas de forma
// todo-o-nada, y conduce la máquina de estados de la habitación.
type ReservaService struct {
	reservaRepo    domain.ReservaRepository
	habitacionRepo domain.HabitacionRepository
	clienteRepo    domain.ClienteRepository
	servicioRepo   domain.ServicioRepository
	validador      *Validador
	disponibilidad *DisponibilidadService
	cfg            domain.ConfiguracionHotel
	cerrojos       *CerrojosPorClave
	suscriptores   []domain.Suscriptor
	ahora          func() time.Time
}

// NewReservaService crea una nueva instancia del servicio de reservas
func NewReservaService(
	reservaRepo domain.ReservaRepository,
	habitacionRepo domain.HabitacionRepository,
	clienteRepo domain.ClienteRepository,
	servicioRepo domain.ServicioRepository,
	validador *Validador,
	disponibilidad *DisponibilidadService,
	cfg domain.ConfiguracionHotel,
	cerrojos *CerrojosPorClave,
	ahora func() time.Time,
) *ReservaService {
	if cerrojos == nil {
		cerrojos = NewCerrojosPorClave()
	}
	if ahora == nil {
		ahora = time.Now
	}
	return &ReservaService{
		reservaRepo:    reservaRepo,
		habitacionRepo: habitacionRepo,
		clienteRepo:    clienteRepo,
		servicioRepo:   servicioRepo,
		validador:      validador,
		disponibilidad: disponibilidad,
		cfg:            cfg,
		cerrojos:       cerrojos,
		ahora:          ahora,
	}
}

// Suscribir registra un suscriptor de eventos de reserva
func (s *ReservaService) Suscribir(suscriptor domain.Suscriptor) {
	s.suscriptores = append(s.suscriptores, suscriptor)
}

// ValidarSolicitud corre el pipeline de validación sin crear nada
func (s *ReservaService) ValidarSolicitud(req *SolicitudReserva) *ResultadoValidacion {
	return s.validador.Validar(req)
}

// VerificarDisponibilidad verifica si una habitación está disponible
func (s *ReservaService) VerificarDisponibilidad(habitacionID int, entrada, salida time.Time) (bool, error) {
	return s.disponibilidad.VerificarDisponibilidad(habitacionID, entrada, salida, 0)
}

// CreateReserva valida la solicitud, calcula el precio y persiste la
// reserva en estado Pendiente, llevando la habitación a Reservada. Si la
// validación falla devuelve el resultado sin mutar nada.
func (s *ReservaService) CreateReserva(req *SolicitudReserva) (*domain.Reserva, *ResultadoValidacion, error) {
	resultado := s.validador.Validar(req)
	if !resultado.Valido {
		return nil, resultado, nil
	}

	cliente, err := s.resolverCliente(req)
	if err != nil {
		return nil, resultado, err
	}

	habitacion, err := s.habitacionRepo.GetHabitacionByID(req.HabitacionID)
	if err != nil {
		return nil, resultado, fmt.Errorf("error al obtener habitación: %w", err)
	}

	regla := req.Regla
	if regla == "" {
		regla = PrecioNormal
	}
	if !EsReglaValida(regla) {
		return nil, resultado, fmt.Errorf("regla de precio inválida: %s", regla)
	}

	reserva := &domain.Reserva{
		Codigo:            uuid.NewString(),
		ClienteID:         cliente.ID,
		HabitacionID:      habitacion.ID,
		FechaEntrada:      req.FechaEntrada,
		FechaSalida:       req.FechaSalida,
		CantidadHuespedes: req.CantidadHuespedes,
		Estado:            domain.ReservaPendiente,
		Nota:              req.Nota,
		FechaCreacion:     s.ahora(),
	}

	// El conteo histórico se lee al momento de cotizar; el campo del
	// cliente puede venir de una lectura anterior
	reservasPrevias, err := s.clienteRepo.CountReservas(cliente.ID)
	if err != nil {
		return nil, resultado, fmt.Errorf("error al contar reservas del cliente: %w", err)
	}

	noches := reserva.Noches()
	ctx := ContextoPrecio{
		FechaEntrada:    req.FechaEntrada,
		ReservasPrevias: reservasPrevias,
		Ahora:           s.ahora(),
	}
	subtotalHabitacion := CalcularSubtotalHabitacion(habitacion.TarifaBase, noches, regla, ctx)

	lineas, subtotalServicios, err := s.armarLineasServicios(req.Servicios)
	if err != nil {
		return nil, resultado, err
	}
	reserva.Servicios = lineas

	subtotal := subtotalHabitacion + subtotalServicios
	impuesto := subtotal * s.cfg.TasaImpuesto / 100
	reserva.Subtotal = Redondear2(subtotal)
	reserva.Impuesto = Redondear2(impuesto)
	reserva.Total = Redondear2(subtotal + impuesto)

	cerrojo := s.cerrojos.Obtener(ClaveHabitacion(habitacion.ID))
	cerrojo.Lock()
	defer cerrojo.Unlock()

	// El repositorio re-verifica el solapamiento dentro de una transacción
	// serializable; de dos escritores en carrera solo uno gana
	if err := s.reservaRepo.CreateReserva(reserva); err != nil {
		return nil, resultado, err
	}

	historial := &domain.Historial{}
	historial.Push(domain.TomarSnapshot(reserva, habitacion.Estado, s.ahora()))

	if err := s.conducirHabitacion(habitacion.ID, domain.OperacionReservar); err != nil {
		s.restaurar(historial)
		return nil, resultado, fmt.Errorf("error al reservar habitación: %w", err)
	}

	s.emitir(domain.EventoReservaCreada, reserva, "")
	return reserva, resultado, nil
}

// ConfirmarReserva confirma una reserva pendiente. La habitación ya está
// Reservada, así que no hay efecto sobre su estado.
func (s *ReservaService) ConfirmarReserva(id int) (*domain.Reserva, error) {
	cerrojo := s.cerrojos.Obtener(ClaveReserva(id))
	cerrojo.Lock()
	defer cerrojo.Unlock()

	reserva, err := s.reservaRepo.GetReservaByID(id)
	if err != nil {
		return nil, err
	}

	siguiente, err := domain.TransicionReserva(reserva.Estado, domain.AccionConfirmar)
	if err != nil {
		return nil, err
	}

	if err := s.reservaRepo.UpdateReservaEstado(id, siguiente, ""); err != nil {
		return nil, fmt.Errorf("error al confirmar reserva: %w", err)
	}
	reserva.Estado = siguiente

	s.emitir(domain.EventoReservaConfirmada, reserva, "")
	return reserva, nil
}

// CancelarReserva cancela una reserva. Cancelar una confirmada exige que
// falten al menos VentanaCancelacionDias para la entrada; fuera de la
// ventana se rechaza con ErrorPolitica sin mutar nada. La habitación
// vuelve a Disponible.
func (s *ReservaService) CancelarReserva(id int, motivo string) (*domain.Reserva, error) {
	cerrojo := s.cerrojos.Obtener(ClaveReserva(id))
	cerrojo.Lock()
	defer cerrojo.Unlock()

	reserva, err := s.reservaRepo.GetReservaByID(id)
	if err != nil {
		return nil, err
	}

	cerrojoHabitacion := s.cerrojos.Obtener(ClaveHabitacion(reserva.HabitacionID))
	cerrojoHabitacion.Lock()
	defer cerrojoHabitacion.Unlock()

	if reserva.Estado == domain.ReservaConfirmada {
		dias := diasHasta(soloFecha(s.ahora()), soloFecha(reserva.FechaEntrada))
		if dias < s.cfg.VentanaCancelacionDias {
			return nil, &domain.ErrorPolitica{
				Motivo: fmt.Sprintf("la cancelación requiere al menos %d días de anticipación (faltan %d)",
					s.cfg.VentanaCancelacionDias, dias),
			}
		}
	}

	siguiente, err := domain.TransicionReserva(reserva.Estado, domain.AccionCancelar)
	if err != nil {
		return nil, err
	}

	if err := s.reservaRepo.UpdateReservaEstado(id, siguiente, motivo); err != nil {
		return nil, fmt.Errorf("error al cancelar reserva: %w", err)
	}
	reserva.Estado = siguiente
	reserva.MotivoCancelacion = motivo

	// Liberar solo si la máquina lo permite; si la habitación ya quedó
	// Disponible por otra vía no hay nada que deshacer
	if err := s.conducirHabitacion(reserva.HabitacionID, domain.OperacionLiberar); err != nil && !domain.EsTransicionInvalida(err) {
		return nil, fmt.Errorf("error al liberar habitación: %w", err)
	}

	s.emitir(domain.EventoReservaCancelada, reserva, motivo)
	return reserva, nil
}

// CompletarReserva marca una reserva confirmada como completada. Solo se
// permite cuando la fecha de salida ya llegó; el check-out ya liberó la
// habitación, así que no hay efecto sobre su estado.
func (s *ReservaService) CompletarReserva(id int) (*domain.Reserva, error) {
	cerrojo := s.cerrojos.Obtener(ClaveReserva(id))
	cerrojo.Lock()
	defer cerrojo.Unlock()

	reserva, err := s.reservaRepo.GetReservaByID(id)
	if err != nil {
		return nil, err
	}

	if reserva.Estado == domain.ReservaConfirmada {
		if soloFecha(s.ahora()).Before(soloFecha(reserva.FechaSalida)) {
			return nil, &domain.ErrorPolitica{
				Motivo: "la reserva no puede completarse antes de la fecha de salida",
			}
		}
	}

	siguiente, err := domain.TransicionReserva(reserva.Estado, domain.AccionCompletar)
	if err != nil {
		return nil, err
	}

	if err := s.reservaRepo.UpdateReservaEstado(id, siguiente, ""); err != nil {
		return nil, fmt.Errorf("error al completar reserva: %w", err)
	}
	reserva.Estado = siguiente

	s.emitir(domain.EventoReservaCompletada, reserva, "")
	return reserva, nil
}

// RegistrarCheckIn lleva la habitación de una reserva confirmada a Ocupada
func (s *ReservaService) RegistrarCheckIn(id int) (*domain.Reserva, error) {
	cerrojo := s.cerrojos.Obtener(ClaveReserva(id))
	cerrojo.Lock()
	defer cerrojo.Unlock()

	reserva, err := s.reservaRepo.GetReservaByID(id)
	if err != nil {
		return nil, err
	}

	if reserva.Estado != domain.ReservaConfirmada {
		return nil, &domain.ErrorTransicion{
			Entidad: "reserva",
			Desde:   string(reserva.Estado),
			Accion:  "check-in",
		}
	}

	cerrojoHabitacion := s.cerrojos.Obtener(ClaveHabitacion(reserva.HabitacionID))
	cerrojoHabitacion.Lock()
	defer cerrojoHabitacion.Unlock()

	if err := s.conducirHabitacion(reserva.HabitacionID, domain.OperacionOcupar); err != nil {
		return nil, err
	}
	return reserva, nil
}

// RegistrarCheckOut libera la habitación de una reserva confirmada
func (s *ReservaService) RegistrarCheckOut(id int) (*domain.Reserva, error) {
	cerrojo := s.cerrojos.Obtener(ClaveReserva(id))
	cerrojo.Lock()
	defer cerrojo.Unlock()

	reserva, err := s.reservaRepo.GetReservaByID(id)
	if err != nil {
		return nil, err
	}

	cerrojoHabitacion := s.cerrojos.Obtener(ClaveHabitacion(reserva.HabitacionID))
	cerrojoHabitacion.Lock()
	defer cerrojoHabitacion.Unlock()

	if err := s.conducirHabitacion(reserva.HabitacionID, domain.OperacionLiberar); err != nil {
		return nil, err
	}
	return reserva, nil
}

// GetReservaByID obtiene una reserva por su ID
func (s *ReservaService) GetReservaByID(id int) (*domain.Reserva, error) {
	return s.reservaRepo.GetReservaByID(id)
}

// GetReservasCliente obtiene todas las reservas de un cliente
func (s *ReservaService) GetReservasCliente(clienteID int) ([]domain.Reserva, error) {
	return s.reservaRepo.GetReservasCliente(clienteID)
}

// CompletarExpiradas pasa a Completada las reservas confirmadas cuya
// fecha de salida ya pasó; la usa el scheduler diario
func (s *ReservaService) CompletarExpiradas() error {
	return s.reservaRepo.UpdateExpiredReservations()
}

// resolverCliente devuelve el cliente referenciado o lo busca/crea por
// email con los datos inline de la solicitud
func (s *ReservaService) resolverCliente(req *SolicitudReserva) (*domain.Cliente, error) {
	if req.ClienteID > 0 {
		cliente, err := s.clienteRepo.GetClienteByID(req.ClienteID)
		if err != nil {
			return nil, fmt.Errorf("error al obtener cliente: %w", err)
		}
		return cliente, nil
	}

	cliente, err := s.clienteRepo.FindOrCreateByEmail(req.ClienteNombre, req.ClienteEmail, req.ClienteTelefono)
	if err != nil {
		return nil, fmt.Errorf("error al buscar o crear cliente: %w", err)
	}
	return cliente, nil
}

// armarLineasServicios congela el precio de catálogo de cada servicio
// seleccionado y suma el subtotal de servicios. Los IDs desconocidos ya
// fueron advertidos por el pipeline y se omiten.
func (s *ReservaService) armarLineasServicios(selecciones []SeleccionServicio) ([]domain.LineaServicio, float64, error) {
	if len(selecciones) == 0 {
		return nil, 0, nil
	}

	ids := make([]int, 0, len(selecciones))
	for _, seleccion := range selecciones {
		ids = append(ids, seleccion.ServicioID)
	}

	servicios, err := s.servicioRepo.GetServiciosByIDs(ids)
	if err != nil {
		return nil, 0, fmt.Errorf("error al consultar servicios: %w", err)
	}

	porID := make(map[int]domain.Servicio, len(servicios))
	for _, servicio := range servicios {
		porID[servicio.ID] = servicio
	}

	var lineas []domain.LineaServicio
	subtotal := 0.0
	for _, seleccion := range selecciones {
		servicio, existe := porID[seleccion.ServicioID]
		if !existe {
			continue
		}
		cantidad := seleccion.Cantidad
		if cantidad < 1 {
			cantidad = 1
		}
		lineas = append(lineas, domain.LineaServicio{
			ServicioID:     servicio.ID,
			Nombre:         servicio.Name,
			Cantidad:       cantidad,
			PrecioUnitario: servicio.Price,
		})
		subtotal += servicio.Price * float64(cantidad)
	}

	return lineas, subtotal, nil
}

// conducirHabitacion aplica una operación de la máquina de estados de la
// habitación y persiste el estado resultante
func (s *ReservaService) conducirHabitacion(habitacionID int, operacion domain.OperacionHabitacion) error {
	habitacion, err := s.habitacionRepo.GetHabitacionByID(habitacionID)
	if err != nil {
		return fmt.Errorf("error al obtener habitación: %w", err)
	}

	siguiente, err := domain.TransicionHabitacion(habitacion.Estado, operacion)
	if err != nil {
		return err
	}

	if err := s.habitacionRepo.UpdateEstado(habitacionID, siguiente); err != nil {
		return fmt.Errorf("error al actualizar estado de habitación: %w", err)
	}
	return nil
}

// restaurar deshace las mutaciones registradas en el historial, en orden
// inverso: la habitación vuelve al estado capturado en el snapshot y la
// reserva recién persistida se cancela. Una creación a medias no puede
// quedar Pendiente: seguiría bloqueando las fechas sin habitación asignada.
func (s *ReservaService) restaurar(historial *domain.Historial) {
	for {
		snapshot, ok := historial.Pop()
		if !ok {
			return
		}
		if err := s.habitacionRepo.UpdateEstado(snapshot.HabitacionID, snapshot.EstadoHabitacion); err != nil {
			log.Printf("Error al restaurar habitación %d: %v", snapshot.HabitacionID, err)
		}
		if err := s.reservaRepo.UpdateReservaEstado(snapshot.ReservaID, domain.ReservaCancelada, "reversión por falla interna"); err != nil {
			log.Printf("Error al restaurar reserva %d: %v", snapshot.ReservaID, err)
		}
	}
}

// emitir publica un evento de dominio a todos los suscriptores. Los
// suscriptores no pueden hacer fallar la operación que emitió el evento.
func (s *ReservaService) emitir(tipo domain.TipoEvento, reserva *domain.Reserva, motivo string) {
	evento := domain.EventoReserva{
		ID:         uuid.NewString(),
		Tipo:       tipo,
		ReservaID:  reserva.ID,
		ClienteID:  reserva.ClienteID,
		Estado:     reserva.Estado,
		Motivo:     motivo,
		OcurridoEn: s.ahora(),
	}

	for _, suscriptor := range s.suscriptores {
		suscriptor.ManejarEvento(evento)
	}
}
