package stories

import (
	"github.com/Josip135/TattooStudio/internal/domain/stories"

	"gorm.io/gorm"
)

func ownedStoryQuery(db *gorm.DB, storyID, clientID uint) *gorm.DB {
	return db.Model(&stories.Story{}).
		Where("id = ? AND client_id = ?", storyID, clientID)
}
