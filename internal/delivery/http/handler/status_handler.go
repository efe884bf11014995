package handler

import (
	"html/template"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/location-moderation/internal/config"
	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/domain/repository"
	"github.com/location-moderation/internal/usecase/dto"
	"go.uber.org/zap"
)

// StatusPageData - данные для шаблона статусной страницы
type StatusPageData struct {
	Title              string
	PendingRequests    int
	TelegramConfigured bool
	GitHubConfigured   bool
	GitHubRepo         string
	Countries          []CountryCard
}

// CountryCard - карточка страны для статусной страницы
type CountryCard struct {
	Code   string
	Name   string
	Emoji  string
	Levels []string
}

// StatusHandler - хендлер статусной страницы и health check
type StatusHandler struct {
	cfg         *config.Config
	pendingRepo repository.PendingRepository
	logger      *zap.Logger
	tmpl        *template.Template
}

// NewStatusHandler - создание нового StatusHandler
func NewStatusHandler(cfg *config.Config, pendingRepo repository.PendingRepository, logger *zap.Logger) (*StatusHandler, error) {
	tmpl, err := template.New("status").Parse(statusPageTemplate)
	if err != nil {
		return nil, err
	}

	return &StatusHandler{
		cfg:         cfg,
		pendingRepo: pendingRepo,
		logger:      logger,
		tmpl:        tmpl,
	}, nil
}

// RenderStatus - рендеринг статусной страницы сервиса
func (h *StatusHandler) RenderStatus(c *fiber.Ctx) error {
	data := StatusPageData{
		Title:              "Moderación de Ubicaciones",
		PendingRequests:    h.pendingRepo.Len(),
		TelegramConfigured: h.cfg.TelegramConfigured(),
		GitHubConfigured:   h.cfg.GitHubConfigured(),
		GitHubRepo:         h.cfg.GitHub.Repo,
		Countries:          countryCards(),
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return h.tmpl.Execute(c.Response().BodyWriter(), data)
}

// Health godoc
// @Summary Health check
// @Description Состояние сервиса: очередь модерации, поддерживаемые страны, конфигурация интеграций
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:          "healthy",
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		PendingRequests: h.pendingRepo.Len(),
		Countries:       countryCodes(),
	}
	resp.Config.TelegramConfigured = h.cfg.TelegramConfigured()
	resp.Config.GitHubConfigured = h.cfg.GitHubConfigured()

	return c.JSON(resp)
}

func countryCodes() []string {
	codes := make([]string, 0, len(domain.Countries))
	for code := range domain.Countries {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	return codes
}

func countryCards() []CountryCard {
	cards := make([]CountryCard, 0, len(domain.Countries))
	for code, country := range domain.Countries {
		cards = append(cards, CountryCard{
			Code:   string(code),
			Name:   country.Name,
			Emoji:  country.Emoji,
			Levels: country.Levels,
		})
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Code < cards[j].Code })
	return cards
}

const statusPageTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; background: #f5f6fa; margin: 0; padding: 2rem; color: #2d3436; }
.container { max-width: 720px; margin: 0 auto; }
h1 { font-size: 1.6rem; }
.card { background: #fff; border-radius: 8px; padding: 1rem 1.25rem; margin-bottom: 1rem; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
.card h2 { font-size: 1.1rem; margin-top: 0; }
.badge { display: inline-block; padding: .15rem .5rem; border-radius: 4px; font-size: .85rem; }
.ok { background: #dff9e6; color: #1b7a3d; }
.missing { background: #fde3e3; color: #b33939; }
.levels { color: #636e72; font-size: .9rem; }
.count { font-size: 2rem; font-weight: 700; }
</style>
</head>
<body>
<div class="container">
<h1>📍 {{.Title}}</h1>

<div class="card">
<h2>Solicitudes pendientes</h2>
<div class="count">{{.PendingRequests}}</div>
</div>

<div class="card">
<h2>Configuración</h2>
<p>Telegram:
{{if .TelegramConfigured}}<span class="badge ok">✅ configurado</span>
{{else}}<span class="badge missing">❌ falta TELEGRAM_BOT_TOKEN</span>{{end}}
</p>
<p>GitHub:
{{if .GitHubConfigured}}<span class="badge ok">✅ {{.GitHubRepo}}</span>
{{else}}<span class="badge missing">❌ falta GITHUB_TOKEN / GITHUB_REPO</span>{{end}}
</p>
</div>

<div class="card">
<h2>Países soportados</h2>
{{range .Countries}}
<p>{{.Emoji}} <strong>{{.Name}}</strong> ({{.Code}})<br>
<span class="levels">{{range $i, $l := .Levels}}{{if $i}} → {{end}}{{$l}}{{end}}</span></p>
{{end}}
</div>

</div>
</body>
</html>
`
