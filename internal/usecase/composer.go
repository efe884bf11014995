package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/pkg/utils"
)

// Префиксы callback data: действие + id заявки - это всё состояние,
// необходимое для возобновления контроллера по нажатию кнопки
const (
	ActionApprove = "approve_"
	ActionReject  = "reject_"
	ActionCopy    = "copy_"
)

// ComposeSubmission строит уведомление модератору: Markdown-сообщение с
// фиксированными секциями и клавиатуру ровно из четырёх контролов
func ComposeSubmission(req domain.PendingRequest) (string, *domain.InlineKeyboard) {
	country := domain.Countries[req.Country]
	loc := req.Submission

	var b strings.Builder
	fmt.Fprintf(&b, "%s *NUEVA SOLICITUD - %s*\n\n", country.Emoji, strings.ToUpper(country.Name))
	fmt.Fprintf(&b, "*📌 Nombre:* %s\n", loc.Name)
	fmt.Fprintf(&b, "*📍 Coordenadas:* `%s`", loc.Coords)

	// Административные поля в порядке, принятом для страны
	if hierarchy, ok := loc.Hierarchy(); ok {
		switch h := hierarchy.(type) {
		case domain.DeptoMunicipio:
			fmt.Fprintf(&b, "\n*🏙️ Municipio:* %s", h.Municipio)
			fmt.Fprintf(&b, "\n*🏛️ Departamento:* %s", h.Departamento)
		case domain.ProvinciaCantonDistrito:
			fmt.Fprintf(&b, "\n*🏙️ Cantón:* %s", h.Canton)
			fmt.Fprintf(&b, "\n*🏛️ Provincia:* %s", h.Provincia)
			fmt.Fprintf(&b, "\n*📍 Distrito:* %s", h.Distrito)
		case domain.ProvinciaDistritoCorregimiento:
			fmt.Fprintf(&b, "\n*🏙️ Distrito:* %s", h.Distrito)
			fmt.Fprintf(&b, "\n*🏛️ Provincia:* %s", h.Provincia)
			fmt.Fprintf(&b, "\n*📍 Corregimiento:* %s", h.Corregimiento)
		}
	}

	recordType := loc.Type
	if recordType == "" {
		recordType = "colonia"
	}
	fmt.Fprintf(&b, "\n*📋 Tipo:* %s\n\n", recordType)
	fmt.Fprintf(&b, "*🆔 ID:* `%s`", req.ID)

	keyboard := &domain.InlineKeyboard{
		Rows: [][]domain.InlineButton{
			{
				{Text: "✅ Aprobar", CallbackData: ActionApprove + req.ID},
				{Text: "❌ Rechazar", CallbackData: ActionReject + req.ID},
			},
			{
				{Text: "🗺️ Ver en Maps", URL: mapsURL(loc)},
				{Text: "📋 Copiar coords", CallbackData: ActionCopy + req.ID},
			},
		},
	}

	return b.String(), keyboard
}

// mapsURL строит ссылку на карту из координат; если пара не разбирается -
// поисковый запрос по имени
func mapsURL(loc domain.Submission) string {
	if lat, lon, err := utils.ParseCoords(loc.Coords); err == nil {
		return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", lat, lon)
	}
	return "https://www.google.com/maps/search/" + url.PathEscape(loc.Name)
}

// ComposeApproved - текст замены сообщения после успешного approve
func ComposeApproved(req domain.PendingRequest) string {
	country := domain.Countries[req.Country]
	return fmt.Sprintf("✅ *APROBADO - %s %s*\n\n*%s* ha sido agregada a la base de datos.",
		country.Emoji, country.Name, req.Submission.Name)
}

// ComposeRejected - текст замены сообщения после reject
func ComposeRejected(req domain.PendingRequest) string {
	country := domain.Countries[req.Country]
	return fmt.Sprintf("❌ *RECHAZADO - %s %s*\n\n*%s* ha sido rechazada.",
		country.Emoji, country.Name, req.Submission.Name)
}

// ComposeMergeFailed - текст при ошибке merge; заявка остаётся pending
func ComposeMergeFailed() string {
	return "❌ Error al actualizar la base de datos.\n\nLa solicitud sigue pendiente, intenta de nuevo."
}

// ComposeNotFound - ответ на действие с несуществующим id
func ComposeNotFound() string {
	return "❌ Solicitud no encontrada o ya procesada"
}

// ComposeStart - приветствие бота
func ComposeStart() string {
	var b strings.Builder
	b.WriteString("🤖 *Sistema de Aprobación Centroamérica*\n\n")
	b.WriteString("Recibo solicitudes de nuevas ubicaciones para:\n")
	b.WriteString("🇭🇳 Honduras\n🇸🇻 El Salvador\n🇨🇷 Costa Rica\n🇵🇦 Panamá\n\n")
	b.WriteString("*Comandos:*\n")
	b.WriteString("/lista - Ver solicitudes pendientes\n")
	b.WriteString("/paises - Ver países soportados\n")
	b.WriteString("/aprobar <id> - Aprobar una solicitud\n")
	b.WriteString("/rechazar <id> - Rechazar una solicitud")
	return b.String()
}

// ComposeCountries - список поддерживаемых стран
func ComposeCountries() string {
	var lines []string
	for _, code := range []domain.CountryCode{domain.CountryHN, domain.CountrySV, domain.CountryCR, domain.CountryPA} {
		c := domain.Countries[code]
		lines = append(lines, fmt.Sprintf("%s %s", c.Emoji, c.Name))
	}
	return "*🌎 Países soportados:*\n\n" + strings.Join(lines, "\n")
}

// ComposePendingList - список ожидающих заявок одного чата
func ComposePendingList(requests []domain.PendingRequest) string {
	if len(requests) == 0 {
		return "📭 No hay solicitudes pendientes."
	}

	var b strings.Builder
	b.WriteString("📋 *Solicitudes Pendientes:*\n\n")
	for _, req := range requests {
		country := domain.Countries[req.Country]
		fmt.Fprintf(&b, "%s *%s*\n", country.Emoji, req.Submission.Name)
		fmt.Fprintf(&b, "   🆔: `%s`\n", req.ID)
		fmt.Fprintf(&b, "   📍: `%s`\n\n", req.Submission.Coords)
	}
	return b.String()
}
