package application

import (
	"fmt"
	"time"

	"github.com/Maxito7/hotel_core/internal/domain"
)

// Fakes en memoria para probar los servicios sin base de datos. El fake
// de reservas reproduce el contrato del repositorio real: CreateReserva
// re-verifica el solapamiento y devuelve *ErrorConflicto si pierde la
// carrera.

type fakeReservaRepo struct {
	reservas   map[int]*domain.Reserva
	siguiente  int
	failCreate error
}

func newFakeReservaRepo() *fakeReservaRepo {
	return &fakeReservaRepo{reservas: map[int]*domain.Reserva{}, siguiente: 1}
}

func (f *fakeReservaRepo) GetReservaByID(id int) (*domain.Reserva, error) {
	reserva, existe := f.reservas[id]
	if !existe {
		return nil, domain.ErrNoEncontrado
	}
	copia := *reserva
	return &copia, nil
}

func (f *fakeReservaRepo) CreateReserva(reserva *domain.Reserva) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	for _, existente := range f.reservas {
		if existente.HabitacionID != reserva.HabitacionID || existente.Estado.EsTerminal() {
			continue
		}
		if seSolapan(reserva.FechaEntrada, reserva.FechaSalida, existente.FechaEntrada, existente.FechaSalida) {
			return &domain.ErrorConflicto{
				HabitacionID: reserva.HabitacionID,
				FechaEntrada: reserva.FechaEntrada,
				FechaSalida:  reserva.FechaSalida,
			}
		}
	}
	reserva.ID = f.siguiente
	f.siguiente++
	copia := *reserva
	f.reservas[reserva.ID] = &copia
	return nil
}

func (f *fakeReservaRepo) UpdateReservaEstado(id int, estado domain.EstadoReserva, motivo string) error {
	reserva, existe := f.reservas[id]
	if !existe {
		return domain.ErrNoEncontrado
	}
	reserva.Estado = estado
	if estado == domain.ReservaCancelada {
		reserva.MotivoCancelacion = motivo
	}
	return nil
}

func (f *fakeReservaRepo) GetReservasActivas(habitacionID int, excluirID int) ([]domain.Reserva, error) {
	var activas []domain.Reserva
	for _, reserva := range f.reservas {
		if reserva.HabitacionID != habitacionID || reserva.Estado.EsTerminal() {
			continue
		}
		if excluirID > 0 && reserva.ID == excluirID {
			continue
		}
		activas = append(activas, *reserva)
	}
	return activas, nil
}

func (f *fakeReservaRepo) GetReservasCliente(clienteID int) ([]domain.Reserva, error) {
	var propias []domain.Reserva
	for _, reserva := range f.reservas {
		if reserva.ClienteID == clienteID {
			propias = append(propias, *reserva)
		}
	}
	return propias, nil
}

func (f *fakeReservaRepo) UpdateExpiredReservations() error {
	return nil
}

type fakeHabitacionRepo struct {
	habitaciones map[int]*domain.Habitacion
}

func newFakeHabitacionRepo(habitaciones ...domain.Habitacion) *fakeHabitacionRepo {
	repo := &fakeHabitacionRepo{habitaciones: map[int]*domain.Habitacion{}}
	for i := range habitaciones {
		copia := habitaciones[i]
		repo.habitaciones[copia.ID] = &copia
	}
	return repo
}

func (f *fakeHabitacionRepo) GetHabitacionByID(id int) (*domain.Habitacion, error) {
	habitacion, existe := f.habitaciones[id]
	if !existe {
		return nil, domain.ErrNoEncontrado
	}
	copia := *habitacion
	return &copia, nil
}

func (f *fakeHabitacionRepo) GetAllHabitaciones() ([]domain.Habitacion, error) {
	var todas []domain.Habitacion
	for _, habitacion := range f.habitaciones {
		todas = append(todas, *habitacion)
	}
	return todas, nil
}

func (f *fakeHabitacionRepo) UpdateEstado(id int, estado domain.EstadoHabitacion) error {
	habitacion, existe := f.habitaciones[id]
	if !existe {
		return domain.ErrNoEncontrado
	}
	habitacion.Estado = estado
	return nil
}

type fakeClienteRepo struct {
	clientes map[int]*domain.Cliente
	conteos  map[int]int
}

func newFakeClienteRepo(clientes ...domain.Cliente) *fakeClienteRepo {
	repo := &fakeClienteRepo{clientes: map[int]*domain.Cliente{}}
	for i := range clientes {
		copia := clientes[i]
		repo.clientes[copia.ID] = &copia
	}
	return repo
}

func (f *fakeClienteRepo) GetClienteByID(id int) (*domain.Cliente, error) {
	cliente, existe := f.clientes[id]
	if !existe {
		return nil, domain.ErrNoEncontrado
	}
	copia := *cliente
	return &copia, nil
}

func (f *fakeClienteRepo) FindOrCreateByEmail(nombre, email, telefono string) (*domain.Cliente, error) {
	for _, cliente := range f.clientes {
		if cliente.Email == email {
			copia := *cliente
			return &copia, nil
		}
	}
	id := len(f.clientes) + 1
	cliente := &domain.Cliente{ID: id, Nombre: nombre, Email: email, Telefono: telefono}
	f.clientes[id] = cliente
	copia := *cliente
	return &copia, nil
}

func (f *fakeClienteRepo) CountReservas(clienteID int) (int, error) {
	if conteo, existe := f.conteos[clienteID]; existe {
		return conteo, nil
	}
	cliente, existe := f.clientes[clienteID]
	if !existe {
		return 0, domain.ErrNoEncontrado
	}
	return cliente.CantidadReservas, nil
}

type fakeServicioRepo struct {
	servicios map[int]domain.Servicio
}

func newFakeServicioRepo(servicios ...domain.Servicio) *fakeServicioRepo {
	repo := &fakeServicioRepo{servicios: map[int]domain.Servicio{}}
	for _, servicio := range servicios {
		repo.servicios[servicio.ID] = servicio
	}
	return repo
}

func (f *fakeServicioRepo) GetAllServices() ([]domain.Servicio, error) {
	var todos []domain.Servicio
	for _, servicio := range f.servicios {
		todos = append(todos, servicio)
	}
	return todos, nil
}

func (f *fakeServicioRepo) GetServiciosByIDs(ids []int) ([]domain.Servicio, error) {
	var encontrados []domain.Servicio
	for _, id := range ids {
		if servicio, existe := f.servicios[id]; existe {
			encontrados = append(encontrados, servicio)
		}
	}
	return encontrados, nil
}

// suscriptorPrueba acumula los eventos emitidos durante una prueba
type suscriptorPrueba struct {
	eventos []domain.EventoReserva
}

func (s *suscriptorPrueba) ManejarEvento(evento domain.EventoReserva) {
	s.eventos = append(s.eventos, evento)
}

// entorno arma un servicio de reservas completo sobre los fakes, con un
// reloj fijo para que las pruebas sean deterministas
type entorno struct {
	reservas          *fakeReservaRepo
	habitaciones      *fakeHabitacionRepo
	clientes          *fakeClienteRepo
	servicios         *fakeServicioRepo
	cerrojos          *CerrojosPorClave
	service           *ReservaService
	habitacionService *HabitacionService
	eventos           *suscriptorPrueba
}

func nuevoEntorno(ahora time.Time) *entorno {
	reservas := newFakeReservaRepo()
	habitaciones := newFakeHabitacionRepo(
		domain.Habitacion{ID: 1, Nombre: "Monte Albán", Numero: "101", Tipo: "Doble", Capacidad: 2, TarifaBase: 800, Estado: domain.HabitacionDisponible},
		domain.Habitacion{ID: 2, Nombre: "Mitla", Numero: "102", Tipo: "Suite", Capacidad: 4, TarifaBase: 1500, Estado: domain.HabitacionDisponible},
		domain.Habitacion{ID: 3, Nombre: "Hierve el Agua", Numero: "103", Tipo: "Sencilla", Capacidad: 1, TarifaBase: 500, Estado: domain.HabitacionMantenimiento},
	)
	clientes := newFakeClienteRepo(
		domain.Cliente{ID: 1, Nombre: "María López", Email: "maria@example.com", CantidadReservas: 0},
		domain.Cliente{ID: 2, Nombre: "Juan Pérez", Email: "juan@example.com", CantidadReservas: 12},
	)
	servicios := newFakeServicioRepo(
		domain.Servicio{ID: 1, Name: "Desayuno buffet", Price: 150, Status: 1},
		domain.Servicio{ID: 2, Name: "Spa", Price: 600, Status: 1},
	)

	cfg := domain.ConfiguracionHotel{
		TasaImpuesto:           16,
		VentanaCancelacionDias: 3,
		HoraCheckIn:            "14:00",
		HoraCheckOut:           "12:00",
	}

	reloj := func() time.Time { return ahora }
	cerrojos := NewCerrojosPorClave()
	disponibilidad := NewDisponibilidadService(reservas, habitaciones)
	validador := NewValidador(clientes, habitaciones, servicios, disponibilidad, cfg, reloj)
	service := NewReservaService(reservas, habitaciones, clientes, servicios, validador, disponibilidad, cfg, cerrojos, reloj)

	eventos := &suscriptorPrueba{}
	service.Suscribir(eventos)

	return &entorno{
		reservas:          reservas,
		habitaciones:      habitaciones,
		clientes:          clientes,
		servicios:         servicios,
		cerrojos:          cerrojos,
		service:           service,
		habitacionService: NewHabitacionService(habitaciones, cerrojos),
		eventos:           eventos,
	}
}

// solicitudBase es una solicitud válida de referencia: habitación 1,
// 3 noches, fuera de temporada alta
func solicitudBase() *SolicitudReserva {
	return &SolicitudReserva{
		ClienteID:         1,
		HabitacionID:      1,
		FechaEntrada:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		FechaSalida:       time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		CantidadHuespedes: 1,
	}
}

func (e *entorno) crearReservaOk(req *SolicitudReserva) (*domain.Reserva, error) {
	reserva, resultado, err := e.service.CreateReserva(req)
	if err != nil {
		return nil, err
	}
	if reserva == nil {
		return nil, fmt.Errorf("solicitud inválida: %v", resultado.Errores)
	}
	return reserva, nil
}
