package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/repodosen/repositori-backend/internal/config"
	"github.com/repodosen/repositori-backend/internal/database"
	"github.com/repodosen/repositori-backend/internal/logger"
	"github.com/repodosen/repositori-backend/internal/model"
	"github.com/repodosen/repositori-backend/internal/repository"
	"github.com/repodosen/repositori-backend/internal/service"
)

// Seeds a starter prodi and dosen. Login requires an existing dosen row, so
// a fresh database cannot be used until this (or an equivalent insert) runs.
func main() {
	var (
		nip       = flag.String("nip", "D001", "NIP of the seed dosen")
		nama      = flag.String("nama", "Administrator Repositori", "Full name of the seed dosen")
		kodeProdi = flag.String("kode-prodi", "TI", "Code of the seed prodi")
		namaProdi = flag.String("nama-prodi", "Teknik Informatika", "Name of the seed prodi")
	)
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	prodiRepo := repository.NewProdiRepository(pool)
	dosenRepo := repository.NewDosenRepository(pool)

	prodiService := service.NewProdiService(prodiRepo)
	dosenService := service.NewDosenService(dosenRepo)

	prodi, err := prodiService.Create(ctx, *kodeProdi, *namaProdi)
	if err != nil {
		if !errors.Is(err, service.ErrDuplicateKey) {
			log.Fatal().Err(err).Msg("Failed to create prodi")
		}
		// Already seeded; reuse the existing row.
		existing, lookupErr := prodiRepo.GetByKode(ctx, *kodeProdi)
		if lookupErr != nil {
			log.Fatal().Err(lookupErr).Msg("Failed to look up existing prodi")
		}
		prodi = existing
		fmt.Printf("Prodi %s already exists (id %d)\n", prodi.KodeProdi, prodi.ID)
	} else {
		fmt.Printf("Created prodi %s (id %d)\n", prodi.KodeProdi, prodi.ID)
	}

	var dosen *model.Dosen
	dosen, err = dosenService.Create(ctx, *nip, *nama, prodi.ID)
	if err != nil {
		if !errors.Is(err, service.ErrDuplicateKey) {
			log.Fatal().Err(err).Msg("Failed to create dosen")
		}
		fmt.Printf("Dosen %s already exists\n", *nip)
		return
	}

	fmt.Printf("Created dosen %s (%s)\n", dosen.NIP, dosen.NamaLengkap)
	fmt.Printf("Login with: {\"nama_lengkap\": %q, \"nip\": %q}\n", dosen.NamaLengkap, dosen.NIP)
}
