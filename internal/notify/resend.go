package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nordixdotma/kamano/internal/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendClient sends the order notification e-mail via the Resend API.
type ResendClient struct {
	apiKey     string
	from       string
	to         string
	endpoint   string
	httpClient *http.Client
}

func NewResendClient(apiKey, from, to string) *ResendClient {
	return &ResendClient{
		apiKey:     apiKey,
		from:       from,
		to:         to,
		endpoint:   resendEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SendOrderEmail posts the order snapshot to Resend. The caller decides what
// a failure means for the shopper; this method only reports it.
func (r *ResendClient) SendOrderEmail(ctx context.Context, order models.Order) error {
	const op = "ResendClient.SendOrderEmail"

	if r.apiKey == "" {
		return fmt.Errorf("%s: api key is not configured", op)
	}

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      r.to,
		"subject": fmt.Sprintf("طلب جديد من %s", order.FullName),
		"html":    buildOrderHTML(order),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal payload: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: send request: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.Warn("resend api rejected order email",
			"op", op, "status", resp.StatusCode, "body", string(respBody))
		return fmt.Errorf("%s: resend api status %d", op, resp.StatusCode)
	}

	slog.Info("order email sent", "op", op, "to", r.to)
	return nil
}

func buildOrderHTML(order models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		variant := ""
		if item.Size != "" {
			variant += item.Size
		}
		if item.Color != "" {
			if variant != "" {
				variant += " / "
			}
			variant += item.Color
		}
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; color: #79776d;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: center; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: left; color: #262622;">%s</td>
      </tr>
    `, item.Name, variant, item.Quantity, item.Price.Display()))
	}

	email := order.Email
	if email == "" {
		email = "—"
	}

	return fmt.Sprintf(`<!doctype html>
<html lang="ar" dir="rtl">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>طلب جديد</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 700px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 24px; font-weight: bold; color: #122f5b;">طلب جديد</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 4px 0; font-size: 14px; color: #262622;"><strong>الاسم الكامل:</strong> %s</p>
        <p style="margin: 4px 0; font-size: 14px; color: #262622;"><strong>البريد الإلكتروني:</strong> %s</p>
        <p style="margin: 4px 0; font-size: 14px; color: #262622;"><strong>الهاتف:</strong> %s</p>
        <p style="margin: 4px 0; font-size: 14px; color: #262622;"><strong>المدينة:</strong> %s</p>
        <p style="margin: 4px 0; font-size: 14px; color: #262622;"><strong>عنوان التوصيل:</strong> %s</p>
      </td>
    </tr>
    <tr>
      <td>
        <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="border-top: 1px solid #e5e5e0;">
          %s
        </table>
      </td>
    </tr>
    <tr>
      <td style="border-top: 1px solid #e5e5e0; padding-top: 12px;">
        <p style="margin: 0; font-size: 16px; font-weight: bold; color: #122f5b;">المجموع: %.2f %s</p>
      </td>
    </tr>
  </table>
</body>
</html>`,
		order.FullName, email, order.Phone, order.City, order.Address,
		rows.String(), order.TotalPrice, order.Currency)
}
