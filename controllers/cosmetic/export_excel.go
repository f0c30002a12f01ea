package cosmeticControllers

import (
	"net/http"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/cosmetics/export-excel
func ExportCosmeticsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cosmetics []models.Cosmetic
		if err := db.Order("created_at DESC").Find(&cosmetics).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cosmetics"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Cosmetics")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Slug", "Brand", "Classify", "Quantity",
			"OriginalPrice", "DiscountPrice", "Rating", "IsNew", "IsSaleOff",
			"CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, cos := range cosmetics {
			row := sheet.AddRow()
			row.AddCell().SetValue(cos.ID)
			row.AddCell().SetValue(cos.Name)
			row.AddCell().SetValue(cos.Slug)
			row.AddCell().SetValue(cos.Brand)
			row.AddCell().SetValue(cos.Classify)
			row.AddCell().SetValue(cos.Quantity)
			row.AddCell().SetValue(cos.OriginalPrice)
			row.AddCell().SetValue(cos.DiscountPrice)
			row.AddCell().SetValue(cos.Rating)
			row.AddCell().SetValue(cos.IsNew)
			row.AddCell().SetValue(cos.IsSaleOff)
			row.AddCell().SetValue(cos.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=cosmetics.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
