package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anoixa/photo-album/database/models"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// migrateCmd 数据库迁移命令
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tools",
	Long:  `Migrate data from one database to another (e.g., SQLite to PostgreSQL).`,
}

// migrateRunCmd 执行迁移命令
var migrateRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run database migration",
	Long: `Run database migration from source to target database.

Examples:
  # Migrate from SQLite to PostgreSQL
  photo-album migrate run --from-sqlite ./data/photos.db --to-postgres "host=localhost user=postgres password=secret dbname=photoalbum port=5432"

  # Migrate with overwrite strategy (replace existing data)
  photo-album migrate run --from-sqlite ./data/photos.db --to-postgres "..." --on-conflict=overwrite

  # Stop on conflict
  photo-album migrate run --from-sqlite ./data/photos.db --to-postgres "..." --on-conflict=error`,
	Run: func(cmd *cobra.Command, args []string) {
		fromType, _ := cmd.Flags().GetString("from-type")
		toType, _ := cmd.Flags().GetString("to-type")
		fromDSN, _ := cmd.Flags().GetString("from-dsn")
		toDSN, _ := cmd.Flags().GetString("to-dsn")
		fromSQLite, _ := cmd.Flags().GetString("from-sqlite")
		toPostgres, _ := cmd.Flags().GetString("to-postgres")
		skipConfirm, _ := cmd.Flags().GetBool("yes")
		batchSize, _ := cmd.Flags().GetInt("batch-size")
		onConflict, _ := cmd.Flags().GetString("on-conflict")

		if err := runMigration(fromType, toType, fromDSN, toDSN, fromSQLite, toPostgres, skipConfirm, batchSize, onConflict); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateRunCmd)

	migrateRunCmd.Flags().String("from-type", "", "Source database type (sqlite, postgres)")
	migrateRunCmd.Flags().String("to-type", "", "Target database type (sqlite, postgres)")
	migrateRunCmd.Flags().String("from-dsn", "", "Source database DSN/connection string")
	migrateRunCmd.Flags().String("to-dsn", "", "Target database DSN/connection string")
	migrateRunCmd.Flags().String("from-sqlite", "", "Source SQLite file path (shortcut)")
	migrateRunCmd.Flags().String("to-postgres", "", "Target PostgreSQL connection string (shortcut)")
	migrateRunCmd.Flags().Bool("yes", false, "Skip confirmation prompt")
	migrateRunCmd.Flags().Int("batch-size", 100, "Batch size for data migration")
	migrateRunCmd.Flags().String("on-conflict", "skip", "Conflict resolution strategy: skip (default), overwrite, error")
}

// migrateStats 迁移统计
type migrateStats struct {
	photos      int
	skipped     int // 跳过的记录数
	overwritten int // 覆盖的记录数
	errors      []string
}

// runMigration 执行数据库迁移
func runMigration(fromType, toType, fromDSN, toDSN, fromSQLite, toPostgres string, skipConfirm bool, batchSize int, onConflict string) error {
	// 验证冲突处理策略
	if onConflict != "skip" && onConflict != "overwrite" && onConflict != "error" {
		return fmt.Errorf("invalid on-conflict strategy: %s (must be skip, overwrite, or error)", onConflict)
	}

	// 处理快捷方式参数
	if fromSQLite != "" {
		fromType = "sqlite"
		fromDSN = fromSQLite
	}
	if toPostgres != "" {
		toType = "postgres"
		toDSN = toPostgres
	}

	// 验证参数
	if fromType == "" || toType == "" {
		return fmt.Errorf("both --from-type and --to-type are required")
	}
	if fromDSN == "" || toDSN == "" {
		return fmt.Errorf("both --from-dsn and --to-dsn (or shortcuts) are required")
	}

	// 检查源和目标是否相同
	if fromType == toType && fromDSN == toDSN {
		return fmt.Errorf("source and target databases are the same")
	}

	log.Printf("Migrating from %s to %s", fromType, toType)
	log.Printf("Source: %s", maskDSN(fromDSN))
	log.Printf("Target: %s", maskDSN(toDSN))
	log.Printf("Conflict strategy: %s", onConflict)

	// 连接源数据库
	sourceDB, err := openDatabase(fromType, fromDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to source database: %w", err)
	}
	sqlDB, _ := sourceDB.DB()
	defer sqlDB.Close()

	// 连接目标数据库
	targetDB, err := openDatabase(toType, toDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to target database: %w", err)
	}
	sqlDB2, _ := targetDB.DB()
	defer sqlDB2.Close()

	// 确认迁移
	if !skipConfirm {
		fmt.Println("\nWarning: This will migrate all photos from source to target database.")
		fmt.Printf("Conflict resolution strategy: %s\n", onConflict)
		fmt.Println("Existing data in target database may be affected.")
		fmt.Print("Do you want to continue? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Migration cancelled.")
			return nil
		}
	}

	stats := &migrateStats{}

	// 自动迁移目标数据库结构
	log.Println("Migrating database schema...")
	if err := autoMigrate(targetDB); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// 迁移数据
	ctx := context.Background()

	log.Println("Migrating photos...")
	if err := migratePhotos(ctx, sourceDB, targetDB, stats, batchSize, onConflict); err != nil {
		stats.errors = append(stats.errors, fmt.Sprintf("photos migration failed: %v", err))
		if onConflict == "error" {
			printMigrateStats(stats)
			return err
		}
	}

	// 打印统计
	printMigrateStats(stats)

	if len(stats.errors) > 0 {
		return fmt.Errorf("migration completed with %d errors", len(stats.errors))
	}

	log.Println("Migration completed successfully!")
	return nil
}

// openDatabase 打开数据库连接
func openDatabase(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "sqlite":
		sqliteDSN := dsn
		if sqliteDSN == "" {
			sqliteDSN = "file::memory:?cache=shared"
		}
		dialector = sqlite.Open(sqliteDSN)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// autoMigrate 自动迁移数据库结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Photo{})
}

// handleConflict 处理冲突
// 返回值: shouldCreate (是否创建), shouldOverwrite (是否覆盖), error
func handleConflict(targetDB *gorm.DB, model interface{}, where string, args []interface{}, onConflict string) (bool, bool, error) {
	var count int64
	if err := targetDB.Model(model).Where(where, args...).Count(&count).Error; err != nil {
		return false, false, err
	}

	if count == 0 {
		// 不存在，可以创建
		return true, false, nil
	}

	// 已存在
	switch onConflict {
	case "skip":
		return false, false, nil
	case "overwrite":
		return false, true, nil
	case "error":
		return false, false, fmt.Errorf("record already exists: %v", args)
	default:
		return false, false, nil
	}
}

// migratePhotos 迁移照片数据
func migratePhotos(ctx context.Context, sourceDB, targetDB *gorm.DB, stats *migrateStats, batchSize int, onConflict string) error {
	var totalCount int64
	if err := sourceDB.WithContext(ctx).Model(&models.Photo{}).Count(&totalCount).Error; err != nil {
		return err
	}

	var offset int
	for {
		var photos []models.Photo
		if err := sourceDB.WithContext(ctx).Order("id").Limit(batchSize).Offset(offset).Find(&photos).Error; err != nil {
			return err
		}

		if len(photos) == 0 {
			break
		}

		for _, photo := range photos {
			shouldCreate, shouldOverwrite, err := handleConflict(
				targetDB.WithContext(ctx),
				&models.Photo{},
				"id = ? OR stored_file_name = ?",
				[]interface{}{photo.ID, photo.StoredFileName},
				onConflict,
			)
			if err != nil {
				stats.errors = append(stats.errors, fmt.Sprintf("conflict check failed for photo %s: %v", photo.ID, err))
				if onConflict == "error" {
					return err
				}
				continue
			}

			if shouldCreate {
				if err := targetDB.WithContext(ctx).Create(&photo).Error; err != nil {
					stats.errors = append(stats.errors, fmt.Sprintf("failed to migrate photo %s: %v", photo.ID, err))
					continue
				}
				stats.photos++
			} else if shouldOverwrite {
				targetDB.WithContext(ctx).Where("id = ? OR stored_file_name = ?", photo.ID, photo.StoredFileName).Delete(&models.Photo{})
				if err := targetDB.WithContext(ctx).Create(&photo).Error; err != nil {
					stats.errors = append(stats.errors, fmt.Sprintf("failed to overwrite photo %s: %v", photo.ID, err))
					continue
				}
				stats.overwritten++
				stats.photos++
			} else {
				stats.skipped++
			}
		}

		offset += batchSize
		if offset%1000 == 0 {
			log.Printf("Migrated %d/%d photos...", stats.photos, totalCount)
		}
	}

	log.Printf("Migrated %d photos (skipped: %d, overwritten: %d)", stats.photos, stats.skipped, stats.overwritten)
	return nil
}

// maskDSN 隐藏敏感信息
func maskDSN(dsn string) string {
	if len(dsn) > 50 {
		return dsn[:50] + "..."
	}
	return dsn
}

// printMigrateStats 打印迁移统计
func printMigrateStats(stats *migrateStats) {
	fmt.Println()
	fmt.Println("========================================")
	fmt.Println("       Migration Statistics")
	fmt.Println("========================================")
	fmt.Printf("Photos migrated:   %d\n", stats.photos)
	fmt.Printf("Skipped records:   %d\n", stats.skipped)
	fmt.Printf("Overwritten:       %d\n", stats.overwritten)
	fmt.Println("========================================")

	if len(stats.errors) > 0 {
		fmt.Println("\nErrors encountered:")
		for _, err := range stats.errors {
			fmt.Printf("  - %s\n", err)
		}
	}
}
