// Package docs Railway Assistant Actions API.
//
// Сервер actions для железнодорожного ассистента. Диалоговый менеджер
// вызывает /webhook с именем action и трекером диалога, сервер отвечает
// репликами бота на польском языке: расписание, опоздания, цены билетов,
// перроны, типы поездов и услуги на борту.
//
//	Schemes: http
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
