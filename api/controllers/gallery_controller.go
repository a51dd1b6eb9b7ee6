package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/menulens/menulens-go/gallery"
	"github.com/menulens/menulens-go/tool"
)

type GalleryController struct {
	gallery *gallery.Controller
}

func NewGalleryController(g *gallery.Controller) *GalleryController {
	return &GalleryController{gallery: g}
}

type GalleryOpenRequest struct {
	Images     []string `json:"images"`
	StartIndex int      `json:"startIndex"`
}

// DragRequest carries one pointer sample. T is the pointer event timestamp
// in milliseconds since the epoch; zero means "now".
type DragRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T int64   `json:"t"`
}

func (r DragRequest) point() gallery.Point {
	return gallery.Point{X: r.X, Y: r.Y}
}

func (r DragRequest) at() time.Time {
	if r.T == 0 {
		return time.Now()
	}
	return time.UnixMilli(r.T)
}

func (ctrl *GalleryController) HandleOpen(c *gin.Context) {
	var req GalleryOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body"))
		return
	}
	ctrl.gallery.Open(req.Images, req.StartIndex)
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(ctrl.gallery.Snapshot()))
}

func (ctrl *GalleryController) HandleClose(c *gin.Context) {
	ctrl.gallery.Close()
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}

func (ctrl *GalleryController) HandleNext(c *gin.Context) {
	ctrl.gallery.Next()
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(ctrl.gallery.Snapshot()))
}

func (ctrl *GalleryController) HandlePrev(c *gin.Context) {
	ctrl.gallery.Prev()
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(ctrl.gallery.Snapshot()))
}

func (ctrl *GalleryController) HandleDragStart(c *gin.Context) {
	var req DragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body"))
		return
	}
	ctrl.gallery.DragStart(req.point(), req.at())
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}

func (ctrl *GalleryController) HandleDragMove(c *gin.Context) {
	var req DragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body"))
		return
	}
	ctrl.gallery.DragMove(req.point())
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}

func (ctrl *GalleryController) HandleDragEnd(c *gin.Context) {
	var req DragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body"))
		return
	}
	ctrl.gallery.DragEnd(req.point(), req.at())
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(ctrl.gallery.Snapshot()))
}

// HandleSnapshot answers the current carousel state.
func (ctrl *GalleryController) HandleSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(ctrl.gallery.Snapshot()))
}
