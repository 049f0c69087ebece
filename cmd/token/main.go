// Command token emite un Bearer Token para operadores usando JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/jwt"
)

func main() {
	var (
		sub  = flag.String("sub", "operador", "Sujeto del token")
		role = flag.String("role", "admin", "Rol")
		exp  = flag.Int("exp", 0, "Minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está configurado")
		os.Exit(1)
	}
	minutes := *exp
	if minutes <= 0 {
		minutes = cfg.JWT.Expiration
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *sub, *role, cfg.JWT.Issuer, minutes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
