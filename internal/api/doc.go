// Package api contains the HTTP handlers, request/response models,
// and error mapping for the SprintSync API. Handlers translate HTTP
// to service calls; authorization and business rules live in the
// service layer.
package api
