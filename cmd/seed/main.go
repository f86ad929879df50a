package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/saasnotes/backend/internal/domain/identity"
	"github.com/saasnotes/backend/internal/domain/shared"
	"github.com/saasnotes/backend/internal/infrastructure/config"
	"github.com/saasnotes/backend/internal/infrastructure/persistence"
)

type seedUser struct {
	email    string
	password string
	role     identity.Role
}

type seedTenant struct {
	name  string
	slug  string
	users []seedUser
}

// Demo fixtures: two tenants with an admin and a member each. Re-running
// the seeder skips anything that already exists.
var fixtures = []seedTenant{
	{
		name: "Acme Corp",
		slug: "acme",
		users: []seedUser{
			{"admin@acme.test", "password", identity.RoleAdmin},
			{"user@acme.test", "password", identity.RoleMember},
		},
	},
	{
		name: "Globex Inc",
		slug: "globex",
		users: []seedUser{
			{"admin@globex.test", "password", identity.RoleAdmin},
			{"user@globex.test", "password", identity.RoleMember},
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx := context.Background()
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	for _, st := range fixtures {
		tenant, err := tenantRepo.FindBySlug(ctx, st.slug)
		if errors.Is(err, shared.ErrNotFound) {
			tenant, err = identity.NewTenant(st.name, st.slug)
			if err == nil {
				err = tenantRepo.Create(ctx, tenant)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create tenant %s: %v\n", st.slug, err)
				os.Exit(1)
			}
			fmt.Printf("Created tenant %s (%s)\n", st.name, st.slug)
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to look up tenant %s: %v\n", st.slug, err)
			os.Exit(1)
		} else {
			fmt.Printf("Tenant %s already exists\n", st.slug)
		}

		for _, su := range st.users {
			exists, err := userRepo.ExistsByEmail(ctx, su.email)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to look up user %s: %v\n", su.email, err)
				os.Exit(1)
			}
			if exists {
				fmt.Printf("User %s already exists\n", su.email)
				continue
			}

			user, err := identity.NewUser(tenant.ID, su.email, su.password, su.role)
			if err == nil {
				err = userRepo.Create(ctx, user)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create user %s: %v\n", su.email, err)
				os.Exit(1)
			}
			fmt.Printf("Created user %s (%s)\n", su.email, su.role)
		}
	}

	fmt.Println("Seed complete")
}
