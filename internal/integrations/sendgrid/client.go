package sendgrid

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

const (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// Client клиент отправки писем через SendGrid
type Client struct {
	key     string
	from    *sgmail.Email
	timeout time.Duration
	log     Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает новый клиент
// timeout ограничивает один запрос к API, 0 означает без ограничения
func NewClient(key, fromName, fromEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		key:     key,
		from:    sgmail.NewEmail(fromName, fromEmail),
		timeout: timeout,
		log:     log,
	}
}

// SendInvoice отправляет клиенту письмо с котировкой и счётом
// Повторов нет: ошибка возвращается вызывающему
func (c *Client) SendInvoice(ctx context.Context, msg InvoiceEmail) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := sendgrid.GetRequest(c.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(buildInvoiceMail(c.from, msg))

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, resp.Body)
	}

	c.log.Info("SendGrid: invoice %s sent to %s", msg.InvoiceNumber, msg.CustomerEmail)
	return nil
}

func buildInvoiceMail(from *sgmail.Email, msg InvoiceEmail) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = fmt.Sprintf("Quotation %s / Invoice %s", msg.QuotationNumber, msg.InvoiceNumber)
	p.AddTos(sgmail.NewEmail(msg.CustomerName, msg.CustomerEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.AddPersonalizations(p)

	text := invoiceText(msg)
	m.AddContent(
		sgmail.NewContent("text/plain", text),
		sgmail.NewContent("text/html", "<pre>"+html.EscapeString(text)+"</pre>"),
	)
	return m
}

func invoiceText(msg InvoiceEmail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", msg.CustomerName)
	fmt.Fprintf(&b, "Thank you for your interest. Please find the details of quotation %s below.\n\n", msg.QuotationNumber)
	fmt.Fprintf(&b, "Service: %s\n", msg.ServiceName)
	fmt.Fprintf(&b, "Dates: %s - %s (%d days)\n",
		msg.StartDate.Format(domain.DateFormat), msg.EndDate.Format(domain.DateFormat), msg.Days)
	fmt.Fprintf(&b, "Total: %s %s\n", msg.TotalAmount.StringFixed(2), msg.Currency)
	fmt.Fprintf(&b, "Deposit due: %s %s by %s\n", msg.DepositAmount.StringFixed(2), msg.Currency, msg.DueDate.Format(domain.DateFormat))
	fmt.Fprintf(&b, "Remaining: %s %s\n\n", msg.RemainingAmount.StringFixed(2), msg.Currency)
	fmt.Fprintf(&b, "Invoice number: %s\n", msg.InvoiceNumber)
	fmt.Fprintf(&b, "This quotation is valid until %s.\n", msg.ValidUntil.Format(domain.DateFormat))
	return b.String()
}
