package server

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/auth"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/customer"
	ordercontroller "github.com/wesleypiresbh/doces-sabor-de-mel/internal/order/controller"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/product"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/user"
)

func NewRouter(
	gate *auth.Gate,
	authCtrl *auth.Controller,
	customerCtrl *customer.Controller,
	productCtrl *product.Controller,
	orderCtrl *ordercontroller.OrdersController,
	userCtrl *user.Controller,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Page-level redirect rules for the protected business area.
	r.Use(gate.Pages)

	r.Route("/api", func(api chi.Router) {
		api.Post("/login", authCtrl.HandleLogin)
		api.Post("/logout", authCtrl.HandleLogout)
		api.Post("/register", userCtrl.HandleRegister)

		api.Route("/clientes", func(cr chi.Router) {
			cr.Get("/", customerCtrl.HandleSearch)
			cr.Post("/", customerCtrl.HandleCreate)
			cr.Get("/{id}", customerCtrl.HandleGet)
			cr.Put("/{id}", customerCtrl.HandleUpdate)
			cr.Delete("/{id}", customerCtrl.HandleDelete)
		})

		api.Route("/produtos", func(pr chi.Router) {
			pr.Get("/", productCtrl.HandleSearch)
			pr.Post("/", productCtrl.HandleCreate)
			pr.Get("/max-code", productCtrl.HandleMaxCode)
			pr.Get("/{id}", productCtrl.HandleGet)
			pr.Put("/{id}", productCtrl.HandleUpdate)
			pr.Delete("/{id}", productCtrl.HandleDelete)
		})

		api.Route("/pedidos", func(or chi.Router) {
			or.Get("/", orderCtrl.HandleList)
			or.Post("/", orderCtrl.HandleCreate)
			or.Get("/{id}", orderCtrl.HandleDetail)
		})

		api.Group(func(sr chi.Router) {
			sr.Use(gate.RequireSession)
			sr.Get("/usuarios", userCtrl.HandleList)
			sr.Post("/perfil/change-password", userCtrl.HandleChangePassword)
		})

		api.Route("/usuarios/{id}", func(ur chi.Router) {
			ur.Use(gate.RequireAdmin)
			ur.Get("/", userCtrl.HandleGet)
			ur.Put("/", userCtrl.HandleUpdate)
			ur.Delete("/", userCtrl.HandleDelete)
		})
	})

	return r
}
