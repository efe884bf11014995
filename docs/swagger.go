// Package docs Location Moderation Relay API.
//
// Сервис модерации пользовательских локаций. Принимает заявки на новые
// локации от клиентского приложения, пересылает их модератору в Telegram
// с inline-кнопками и при одобрении вносит запись в JSON-документ,
// размещённый в GitHub-репозитории.
//
// Основные возможности:
// - Приём заявок с валидацией страны и координат
// - Уведомление модератора в Telegram (Aprobar/Rechazar/Ver en Maps)
// - Команды бота: /lista, /paises, /aprobar, /rechazar
// - Слияние одобренных записей с optimistic concurrency (SHA compare-and-swap)
// - Модерация по прямой ссылке без Telegram
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- text/html
//
// swagger:meta
package docs
