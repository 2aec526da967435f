package controller

import (
	"net/http"

	"gridstead-backend/logic"
	"gridstead-backend/models"

	"github.com/gin-gonic/gin"
)

// WorldController handles HTTP requests
type WorldController struct {
	world *logic.World
}

func NewWorldController(world *logic.World) *WorldController {
	return &WorldController{world: world}
}

// Move handles POST /move. A plain move charges the caller-computed
// amount and relocates; when conquer is set the request resolves a
// conquest per the presence of tileSize/offset.
func (c *WorldController) Move(ctx *gin.Context) {
	type Request struct {
		ID          uint64        `json:"id"`
		Amount      *int64        `json:"amount"`
		Location    []int         `json:"location"`
		Conquer     bool          `json:"conquer"`
		ConquerCost *int64        `json:"conquerCost"`
		TileSize    float64       `json:"tileSize"`
		Offset      *logic.Offset `json:"offset"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == 0 || req.Amount == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id and amount are required"})
		return
	}

	if !req.Conquer {
		if err := c.world.MovePlayer(req.ID, *req.Amount, req.Location); err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{"ok": true})
		return
	}

	if req.ConquerCost == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "conquerCost is required"})
		return
	}
	conquerReq := logic.ConquerRequest{
		UserID:      req.ID,
		Amount:      *req.Amount,
		Location:    req.Location,
		ConquerCost: *req.ConquerCost,
	}
	if req.TileSize != 0 && req.Offset != nil {
		conquerReq.Resolution = &logic.ConquerParams{
			TileSize: req.TileSize,
			Offset:   *req.Offset,
		}
	}

	result, err := c.world.Conquer(conquerReq)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	if result.ConquerAttempted && !result.ConquerSuccess {
		ctx.JSON(http.StatusOK, gin.H{
			"ok":                 false,
			"conquerSuccess":     false,
			"conquerProbability": result.Probability,
		})
		return
	}

	response := gin.H{"ok": true}
	if result.ConquerAttempted {
		response["conquerSuccess"] = true
		response["conquerProbability"] = result.Probability
	}
	ctx.JSON(http.StatusCreated, response)
}

// Construct handles POST /construct
func (c *WorldController) Construct(ctx *gin.Context) {
	type Request struct {
		Location []int  `json:"location"`
		Type     string `json:"type"`
		UserID   uint64 `json:"userid"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	construction, err := c.world.PlaceConstruction(req.UserID, req.Location, req.Type)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "construction": construction})
}

// GetConstructions handles GET /construct with ?location=, ?locations=
// (repeatable) or ?all=1
func (c *WorldController) GetConstructions(ctx *gin.Context) {
	if location := ctx.Query("location"); location != "" {
		tile, err := models.ParseTile(location)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		constructions, err := c.world.ConstructionsAt(tile)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"constructions": constructions})
		return
	}

	if locations := ctx.QueryArray("locations"); len(locations) > 0 {
		grouped := make(map[string][]models.Construction, len(locations))
		for _, location := range locations {
			tile, err := models.ParseTile(location)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			constructions, err := c.world.ConstructionsAt(tile)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			grouped[location] = constructions
		}
		ctx.JSON(http.StatusOK, gin.H{"constructions": grouped})
		return
	}

	if ctx.Query("all") == "1" {
		constructions, err := c.world.AllConstructions()
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"constructions": constructions})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing location(s)"})
}

// Sync handles GET /sync with optional ?wallet=
func (c *WorldController) Sync(ctx *gin.Context) {
	snapshot, err := c.world.GetSnapshot(ctx.Query("wallet"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}
