package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/Maxito7/hotel_core/internal/domain"
)

// SeleccionServicio es un servicio solicitado con su cantidad
type SeleccionServicio struct {
	ServicioID int `json:"servicioId"`
	Cantidad   int `json:"cantidad"`
}

// SolicitudReserva es la petición cruda que entra al pipeline de
// validación. ClienteID > 0 referencia un cliente existente; si es 0 se
// usan los datos inline (nombre/email) para buscar o crear el cliente.
type SolicitudReserva struct {
	ClienteID         int                 `json:"clienteId,omitempty"`
	ClienteNombre     string              `json:"clienteNombre,omitempty"`
	ClienteEmail      string              `json:"clienteEmail,omitempty"`
	ClienteTelefono   string              `json:"clienteTelefono,omitempty"`
	HabitacionID      int                 `json:"habitacionId"`
	FechaEntrada      time.Time           `json:"fechaEntrada"`
	FechaSalida       time.Time           `json:"fechaSalida"`
	CantidadHuespedes int                 `json:"cantidadHuespedes"`
	Servicios         []SeleccionServicio `json:"servicios,omitempty"`
	Regla             ReglaPrecio         `json:"regla,omitempty"`
	Nota              string              `json:"nota,omitempty"`
}

// ResultadoValidacion acumula el resultado de todas las etapas. Valido es
// verdadero solo si ninguna etapa agregó errores.
type ResultadoValidacion struct {
	Valido       bool     `json:"valido"`
	Errores      []string `json:"errores"`
	Advertencias []string `json:"advertencias"`
	Info         []string `json:"info"`
}

func (r *ResultadoValidacion) agregarError(formato string, args ...any) {
	r.Errores = append(r.Errores, fmt.Sprintf(formato, args...))
	r.Valido = false
}

func (r *ResultadoValidacion) agregarAdvertencia(formato string, args ...any) {
	r.Advertencias = append(r.Advertencias, fmt.Sprintf(formato, args...))
}

func (r *ResultadoValidacion) agregarInfo(formato string, args ...any) {
	r.Info = append(r.Info, fmt.Sprintf(formato, args...))
}

// etapaValidacion inspecciona la solicitud y agrega errores, advertencias
// o info al acumulador compartido. Ninguna etapa corta el pipeline.
type etapaValidacion func(req *SolicitudReserva, resultado *ResultadoValidacion)

// Validador corre el pipeline de validación en orden fijo:
// Cliente → Fechas → Habitación → Disponibilidad → Servicios → Política.
// Todas las etapas corren siempre, sin importar fallas previas, para que
// el llamador reciba el conjunto completo de problemas en una pasada.
type Validador struct {
	clienteRepo    domain.ClienteRepository
	habitacionRepo domain.HabitacionRepository
	servicioRepo   domain.ServicioRepository
	disponibilidad *DisponibilidadService
	cfg            domain.ConfiguracionHotel
	ahora          func() time.Time
}

// NewValidador crea una nueva instancia del validador de solicitudes
func NewValidador(
	clienteRepo domain.ClienteRepository,
	habitacionRepo domain.HabitacionRepository,
	servicioRepo domain.ServicioRepository,
	disponibilidad *DisponibilidadService,
	cfg domain.ConfiguracionHotel,
	ahora func() time.Time,
) *Validador {
	if ahora == nil {
		ahora = time.Now
	}
	return &Validador{
		clienteRepo:    clienteRepo,
		habitacionRepo: habitacionRepo,
		servicioRepo:   servicioRepo,
		disponibilidad: disponibilidad,
		cfg:            cfg,
		ahora:          ahora,
	}
}

// Validar corre todas las etapas sobre la solicitud y devuelve el
// resultado acumulado. Nunca lanza: los problemas se reportan en listas.
func (v *Validador) Validar(req *SolicitudReserva) *ResultadoValidacion {
	resultado := &ResultadoValidacion{
		Valido:       true,
		Errores:      []string{},
		Advertencias: []string{},
		Info:         []string{},
	}

	etapas := []etapaValidacion{
		v.validarCliente,
		v.validarFechas,
		v.validarHabitacion,
		v.validarDisponibilidad,
		v.validarServicios,
		v.validarPolitica,
	}

	for _, etapa := range etapas {
		etapa(req, resultado)
	}

	return resultado
}

// validarCliente exige un cliente existente o datos inline con nombre y
// email
func (v *Validador) validarCliente(req *SolicitudReserva, resultado *ResultadoValidacion) {
	if req.ClienteID > 0 {
		cliente, err := v.clienteRepo.GetClienteByID(req.ClienteID)
		if err != nil {
			resultado.agregarError("el cliente %d no existe", req.ClienteID)
			return
		}
		if cliente.CantidadReservas >= 10 {
			resultado.agregarInfo("cliente VIP: %d reservas previas", cliente.CantidadReservas)
		}
		return
	}

	if strings.TrimSpace(req.ClienteNombre) == "" {
		resultado.agregarError("el nombre del cliente es requerido")
	}
	if strings.TrimSpace(req.ClienteEmail) == "" {
		resultado.agregarError("el email del cliente es requerido")
	}
}

// validarFechas revisa orden, pasado, estadía mínima y casos límite
func (v *Validador) validarFechas(req *SolicitudReserva, resultado *ResultadoValidacion) {
	hoy := soloFecha(v.ahora())
	entrada := soloFecha(req.FechaEntrada)
	salida := soloFecha(req.FechaSalida)

	if !salida.After(entrada) {
		resultado.agregarError("la fecha de salida debe ser posterior a la fecha de entrada")
	}

	if entrada.Before(hoy) {
		resultado.agregarError("la fecha de entrada no puede estar en el pasado")
	}

	noches := domain.NochesEntre(entrada, salida)
	if noches >= 1 && noches > 30 {
		resultado.agregarAdvertencia("estadía de %d noches: las estadías mayores a 30 noches requieren revisión", noches)
	}

	if diasHasta(hoy, entrada) > 365 {
		resultado.agregarAdvertencia("la reserva se hace con más de 365 días de anticipación")
	}

	if esTemporadaAlta(entrada.Month()) {
		resultado.agregarInfo("fechas en temporada alta (%s)", entrada.Month())
	}
}

// validarHabitacion revisa existencia, mantenimiento y capacidad
func (v *Validador) validarHabitacion(req *SolicitudReserva, resultado *ResultadoValidacion) {
	habitacion, err := v.habitacionRepo.GetHabitacionByID(req.HabitacionID)
	if err != nil {
		resultado.agregarError("la habitación %d no existe", req.HabitacionID)
		return
	}

	if habitacion.Estado == domain.HabitacionMantenimiento {
		resultado.agregarError("la habitación %d está en mantenimiento", req.HabitacionID)
	}

	if req.CantidadHuespedes < 1 {
		resultado.agregarError("la reserva debe tener al menos un huésped")
		return
	}

	if req.CantidadHuespedes > habitacion.Capacidad {
		resultado.agregarError("la cantidad de huéspedes (%d) excede la capacidad de la habitación (%d)",
			req.CantidadHuespedes, habitacion.Capacidad)
	} else if req.CantidadHuespedes == habitacion.Capacidad {
		resultado.agregarAdvertencia("la habitación quedará a capacidad máxima (%d huéspedes)", habitacion.Capacidad)
	}
}

// validarDisponibilidad delega en el verificador de disponibilidad
func (v *Validador) validarDisponibilidad(req *SolicitudReserva, resultado *ResultadoValidacion) {
	if !req.FechaSalida.After(req.FechaEntrada) {
		// Sin rango válido no hay nada que verificar; la etapa de fechas
		// ya reportó el error
		return
	}

	disponible, err := v.disponibilidad.VerificarDisponibilidad(req.HabitacionID, req.FechaEntrada, req.FechaSalida, 0)
	if err != nil {
		resultado.agregarError("no se pudo verificar la disponibilidad de la habitación %d", req.HabitacionID)
		return
	}

	if !disponible {
		resultado.agregarError("la habitación %d no está disponible para las fechas seleccionadas", req.HabitacionID)
	}
}

// validarServicios advierte sobre servicios que no existen en el catálogo
func (v *Validador) validarServicios(req *SolicitudReserva, resultado *ResultadoValidacion) {
	if len(req.Servicios) == 0 {
		return
	}

	ids := make([]int, 0, len(req.Servicios))
	for _, seleccion := range req.Servicios {
		if seleccion.Cantidad < 1 {
			resultado.agregarError("la cantidad del servicio %d debe ser mayor a 0", seleccion.ServicioID)
		}
		ids = append(ids, seleccion.ServicioID)
	}

	servicios, err := v.servicioRepo.GetServiciosByIDs(ids)
	if err != nil {
		resultado.agregarError("no se pudo consultar el catálogo de servicios")
		return
	}

	encontrados := make(map[int]bool, len(servicios))
	for _, servicio := range servicios {
		encontrados[servicio.ID] = true
	}

	for _, seleccion := range req.Servicios {
		if !encontrados[seleccion.ServicioID] {
			resultado.agregarAdvertencia("el servicio %d no existe en el catálogo y será ignorado", seleccion.ServicioID)
		}
	}
}

// validarPolitica es informativa: horarios, ventana de cancelación y
// reservas de última hora
func (v *Validador) validarPolitica(req *SolicitudReserva, resultado *ResultadoValidacion) {
	resultado.agregarInfo("check-in a partir de las %s, check-out hasta las %s",
		v.cfg.HoraCheckIn, v.cfg.HoraCheckOut)
	resultado.agregarInfo("cancelación sin penalidad hasta %d días antes de la entrada",
		v.cfg.VentanaCancelacionDias)

	dias := diasHasta(soloFecha(v.ahora()), soloFecha(req.FechaEntrada))
	if dias >= 0 && dias <= 1 {
		resultado.agregarAdvertencia("reserva de última hora: la entrada es hoy o mañana")
	}
}
