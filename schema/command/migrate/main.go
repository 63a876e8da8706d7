package main

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/resqlink/resqlink-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("resqlink")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS resqlink`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO resqlink").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.HelpRequest{},
		&schema.RegionAlert{},
		&schema.EmergencyContact{},
	).Error; err != nil {
		panic(err)
	}

	// one open request per contact number
	if err := db.Model(schema.HelpRequest{}).
		Where(fmt.Sprintf("status = '%s'", schema.STATUS_SUBMITTED)).
		AddUniqueIndex("help_request_unique_if_open", "contact").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.HelpRequest{}).
		AddIndex("help_request_region", "district", "state").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
