package repository

import (
	"context"
	"encoding/json"

	"golang.org/x/crypto/bcrypt"

	"portal-layanan-publik/internal/domain"
	"portal-layanan-publik/internal/store"
)

// Seed populates an empty portal with the fixed startup dataset: one user,
// four service categories, seven services, three applications, and three
// notifications. Order matters because applications and notifications
// reference ids created by earlier steps. Seeding a portal twice is a
// no-op.
func Seed(ctx context.Context, portal *store.Portal, repos *Repositories) error {
	return portal.SeedOnce(func() error {
		return seed(ctx, repos)
	})
}

func seed(ctx context.Context, repos *Repositories) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:      "budisantoso",
		PasswordHash:  string(passwordHash),
		NIK:           "1234567890123456",
		FullName:      "Budi Santoso",
		BirthPlace:    "Jakarta",
		BirthDate:     "1990-01-01",
		Gender:        "L",
		Religion:      "islam",
		MaritalStatus: "kawin",
		Address:       "Jl. Merdeka No. 17, Jakarta",
		Phone:         "081234567890",
		Email:         "budi.santoso@email.com",
		Language:      "id",
	}
	if err := repos.User.Create(ctx, user); err != nil {
		return err
	}

	categories := []domain.ServiceCategory{
		{Name: "Kependudukan", Icon: "person"},
		{Name: "Kesehatan", Icon: "local_hospital"},
		{Name: "Pendidikan", Icon: "school"},
		{Name: "Perizinan", Icon: "business"},
	}
	for i := range categories {
		if err := repos.ServiceCategory.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}

	services := []domain.Service{
		{
			Name:        "e-KTP",
			Description: "Pengajuan dan perpanjangan kartu tanda penduduk elektronik",
			Category:    "Kependudukan",
			Icon:        "assignment_ind",
			Featured:    true,
			Popular:     true,
		},
		{
			Name:        "Kartu Keluarga",
			Description: "Pengajuan dan perubahan kartu keluarga",
			Category:    "Kependudukan",
			Icon:        "family_restroom",
		},
		{
			Name:        "BPJS Kesehatan",
			Description: "Pendaftaran, pembayaran, dan klaim asuransi kesehatan",
			Category:    "Kesehatan",
			Icon:        "healing",
			Featured:    true,
		},
		{
			Name:        "Beasiswa",
			Description: "Pendaftaran beasiswa pendidikan",
			Category:    "Pendidikan",
			Icon:        "school",
		},
		{
			Name:        "Perizinan Usaha",
			Description: "Pengajuan izin usaha, SIUP, dan dokumen bisnis lainnya",
			Category:    "Perizinan",
			Icon:        "business_center",
			Featured:    true,
		},
		{
			Name:        "Bantuan Sosial",
			Description: "Pengajuan bantuan sosial dan subsidi",
			Category:    "Kependudukan",
			Icon:        "attach_money",
		},
		{
			Name:        "Layanan Disabilitas",
			Description: "Layanan dan fasilitas untuk penyandang disabilitas",
			Category:    "Kesehatan",
			Icon:        "accessibility_new",
		},
	}
	for i := range services {
		if err := repos.Service.Create(ctx, &services[i]); err != nil {
			return err
		}
	}

	baseForm, err := json.Marshal(map[string]string{
		"nik":  user.NIK,
		"name": user.FullName,
	})
	if err != nil {
		return err
	}
	businessForm, err := json.Marshal(map[string]string{
		"nik":          user.NIK,
		"name":         user.FullName,
		"businessName": "Toko Budi",
	})
	if err != nil {
		return err
	}

	applications := []domain.Application{
		{UserID: user.ID, ServiceID: services[0].ID, Status: domain.StatusProcessing, FormData: baseForm},
		{UserID: user.ID, ServiceID: services[2].ID, Status: domain.StatusCompleted, FormData: baseForm},
		{UserID: user.ID, ServiceID: services[4].ID, Status: domain.StatusRevision, FormData: businessForm},
	}
	for i := range applications {
		if err := repos.Application.Create(ctx, &applications[i]); err != nil {
			return err
		}
	}

	notifications := []domain.Notification{
		{
			UserID:  user.ID,
			Title:   "Permohonan e-KTP dalam proses",
			Message: "Permohonan e-KTP Anda sedang diproses. Estimasi selesai dalam 5 hari kerja.",
			Type:    domain.NotifInfo,
		},
		{
			UserID:  user.ID,
			Title:   "Pendaftaran BPJS selesai",
			Message: "Pendaftaran BPJS Kesehatan Anda telah selesai. Kartu dapat diambil di kantor cabang terdekat.",
			Type:    domain.NotifSuccess,
		},
		{
			UserID:  user.ID,
			Title:   "Revisi dokumen diperlukan",
			Message: "Mohon periksa kembali dokumen perizinan usaha Anda. Beberapa dokumen perlu diperbaiki.",
			Type:    domain.NotifError,
		},
	}
	for i := range notifications {
		if err := repos.Notification.Create(ctx, &notifications[i]); err != nil {
			return err
		}
	}

	return nil
}
