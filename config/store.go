package config

import (
	"fmt"

	"hms/store"
)

// NewStoreFromEnv chọn backend persistence theo STORE_BACKEND:
// "json" (mặc định) lưu file JSON trong DATA_DIR, "postgres" lưu
// snapshot qua gorm
func NewStoreFromEnv() (store.Store, error) {
	backend := GetEnvDefault("STORE_BACKEND", "json")

	switch backend {
	case "json":
		return store.NewJSONStore(GetEnvDefault("DATA_DIR", "data"))
	case "postgres":
		db, err := ConnectDB()
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db)
	}

	return nil, fmt.Errorf("STORE_BACKEND không hợp lệ: %s", backend)
}
