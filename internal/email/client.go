package email

import (
	"crypto/tls"
	"fmt"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}

	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// ReservaInfo contiene la información de la reserva para los correos
type ReservaInfo struct {
	ID                int
	Codigo            string
	ClienteEmail      string
	ClienteNombre     string
	HabitacionNombre  string
	HabitacionNumero  string
	FechaEntrada      time.Time
	FechaSalida       time.Time
	CantidadHuespedes int
	Noches            int
	Subtotal          float64
	Impuesto          float64
	Total             float64
	Motivo            string
}

// SendReservaConfirmacion envía el correo de confirmación de reserva
func (c *Client) SendReservaConfirmacion(reserva ReservaInfo) error {
	subject := fmt.Sprintf("Confirmación de Reserva #%d - %s", reserva.ID, c.fromName)
	return c.SendEmail(reserva.ClienteEmail, subject, generarHTMLConfirmacion(reserva))
}

// SendReservaCancelacion envía el correo de cancelación de reserva
func (c *Client) SendReservaCancelacion(reserva ReservaInfo) error {
	subject := fmt.Sprintf("Cancelación de Reserva #%d - %s", reserva.ID, c.fromName)
	return c.SendEmail(reserva.ClienteEmail, subject, generarHTMLCancelacion(reserva))
}

func generarHTMLConfirmacion(reserva ReservaInfo) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
				.details { background-color: white; padding: 15px; margin: 10px 0; border-radius: 5px; }
				.total { font-size: 18px; font-weight: bold; color: #4CAF50; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Confirmación de Reserva</h1>
				</div>
				<div class="content">
					<p>Estimado/a %s,</p>
					<p>Su reserva ha sido confirmada exitosamente. A continuación los detalles:</p>

					<div class="details">
						<h3>Detalles de la Reserva</h3>
						<p><strong>Número de Reserva:</strong> #%d</p>
						<p><strong>Código:</strong> %s</p>
						<p><strong>Habitación:</strong> %s (%s)</p>
						<p><strong>Entrada:</strong> %s</p>
						<p><strong>Salida:</strong> %s</p>
						<p><strong>Noches:</strong> %d</p>
						<p><strong>Huéspedes:</strong> %d</p>
					</div>

					<div class="details">
						<h3>Información de Pago</h3>
						<p><strong>Subtotal:</strong> S/. %.2f</p>
						<p><strong>Impuesto:</strong> S/. %.2f</p>
						<p class="total">Total: S/. %.2f</p>
					</div>

					<p>Gracias por su preferencia. Esperamos verle pronto.</p>
				</div>
				<div class="footer">
					<p>Este es un correo automático, por favor no responder.</p>
				</div>
			</div>
		</body>
		</html>
	`,
		reserva.ClienteNombre,
		reserva.ID,
		reserva.Codigo,
		reserva.HabitacionNombre,
		reserva.HabitacionNumero,
		reserva.FechaEntrada.Format("02/01/2006"),
		reserva.FechaSalida.Format("02/01/2006"),
		reserva.Noches,
		reserva.CantidadHuespedes,
		reserva.Subtotal,
		reserva.Impuesto,
		reserva.Total,
	)
}

func generarHTMLCancelacion(reserva ReservaInfo) string {
	motivo := reserva.Motivo
	if motivo == "" {
		motivo = "No especificado"
	}

	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #E53935; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.details { background-color: white; padding: 15px; margin: 10px 0; border-radius: 5px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Cancelación de Reserva</h1>
				</div>
				<div class="content">
					<p>Estimado/a %s,</p>
					<p>Su reserva #%d ha sido cancelada.</p>

					<div class="details">
						<p><strong>Habitación:</strong> %s (%s)</p>
						<p><strong>Entrada:</strong> %s</p>
						<p><strong>Salida:</strong> %s</p>
						<p><strong>Motivo:</strong> %s</p>
					</div>

					<p>Si tiene alguna pregunta, no dude en contactarnos.</p>
				</div>
			</div>
		</body>
		</html>
	`,
		reserva.ClienteNombre,
		reserva.ID,
		reserva.HabitacionNombre,
		reserva.HabitacionNumero,
		reserva.FechaEntrada.Format("02/01/2006"),
		reserva.FechaSalida.Format("02/01/2006"),
		motivo,
	)
}
