// Command checkout-lint runs the storefront's checkout validation against a
// JSON form file, or against answers typed at interactive prompts.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"dora-eats/internal/checkout"
	"dora-eats/internal/configs"
	"dora-eats/internal/models"
)

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}

	path := flag.String("file", cfg.CheckoutFormPath, "JSON file holding flat checkout form fields")
	interactive := flag.Bool("i", false, "prompt for every field instead of reading a file")
	flag.Parse()

	opts := cfg.CheckoutOptions()

	var fields models.Fields
	switch {
	case *interactive:
		fields, err = promptFields(opts)
	case *path != "":
		fields, err = readFields(*path)
	default:
		logrus.Fatal("nothing to check: pass -file or -i")
	}
	if err != nil {
		logrus.Fatalf("read form: %s", err)
	}

	if !lint(os.Stdout, checkout.New(opts), fields) {
		os.Exit(1)
	}
}
