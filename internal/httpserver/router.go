package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/auth"
	"boutiquehub/internal/httpserver/handlers"
	"boutiquehub/internal/storage"
)

func NewRouter(db *gorm.DB, tokens *auth.Tokens, st storage.Storer, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)

	r.Route("/api/superadmin", func(r chi.Router) {
		r.Post("/register", handlers.Register(db, tokens, lg))
		r.Post("/login", handlers.Login(db, tokens, lg))

		r.Group(func(protected chi.Router) {
			protected.Use(auth.RequireSuperAdmin(db, tokens))

			protected.Post("/admins-secondaires", handlers.CreateAdminSecondaire(db, lg))
			protected.Get("/admins-secondaires", handlers.ListAdminsSecondaires(db, lg))
			protected.Put("/admins-secondaires/{id}/permissions", handlers.UpdatePermissions(db, lg))
			protected.Post("/admins-secondaires/{id}/suspend", handlers.SuspendAdminSecondaire(db, lg))
			protected.Delete("/admins-secondaires/{id}", handlers.DeleteAdminSecondaire(db, lg))

			protected.Post("/admins", handlers.CreateAdmin(db, lg))
			protected.Get("/admins", handlers.ListAdmins(db, lg))
			protected.Post("/admins/{id}/suspend", handlers.SuspendAdmin(db, lg))
			protected.Delete("/admins/{id}", handlers.DeleteAdmin(db, lg))

			protected.Post("/boutiques", handlers.CreateBoutique(db, st, lg))
			protected.Get("/boutiques", handlers.ListBoutiques(db, lg))
			protected.Put("/boutiques/{id}", handlers.UpdateBoutique(db, st, lg))
			protected.Delete("/boutiques/{id}", handlers.DeleteBoutique(db, lg))

			protected.Post("/produits-longrich", handlers.CreateProduitLongrich(db, st, lg))
			protected.Get("/boutiques/{boutiqueId}/produits", handlers.ListProduitsByBoutique(db, lg))
			protected.Put("/produits-longrich/{id}", handlers.UpdateProduitLongrich(db, st, lg))
			protected.Delete("/produits-longrich/{id}", handlers.DeleteProduitLongrich(db, lg))
			protected.Post("/boutiques/{boutiqueId}/duplicate-produits/{sourceBoutiqueId}", handlers.DuplicateProduits(db, lg))

			protected.Post("/autres-produits", handlers.CreateAutreProduit(db, st, lg))
			protected.Get("/boutiques/{boutiqueId}/autres-produits", handlers.ListAutresProduitsByBoutique(db, lg))
			protected.Put("/autres-produits/{id}", handlers.UpdateAutreProduit(db, st, lg))
			protected.Delete("/autres-produits/{id}", handlers.DeleteAutreProduit(db, lg))

			protected.Post("/livreurs", handlers.CreateLivreur(db, lg))
			protected.Get("/livreurs", handlers.ListLivreurs(db, lg))
			protected.Post("/livreurs/{id}/disponibilite", handlers.SetLivreurDisponibilite(db, lg))

			protected.Post("/commandes", handlers.CreateCommande(db, lg))
			protected.Get("/boutiques/{boutiqueId}/commandes", handlers.ListCommandesByBoutique(db, lg))
			protected.Put("/commandes/{id}/statut", handlers.UpdateCommandeStatut(db, lg))
			protected.Delete("/commandes/{id}", handlers.DeleteCommande(db, lg))

			protected.Post("/chiffres-affaires", handlers.CreateChiffreAffaire(db, lg))
			protected.Post("/chiffres-affaires/{id}/valider", handlers.ValiderChiffreAffaire(db, lg))
			protected.Get("/stats/ca", handlers.StatsCA(db, lg))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
