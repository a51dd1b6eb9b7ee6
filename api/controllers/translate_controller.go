package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menulens/menulens-go/lifecycle"
	"github.com/menulens/menulens-go/tool"
	"github.com/menulens/menulens-go/types"
)

type TranslateController struct {
	lifecycle *lifecycle.Controller
}

func NewTranslateController(lc *lifecycle.Controller) *TranslateController {
	return &TranslateController{lifecycle: lc}
}

// HandleTranslate accepts the menu photo and hands it to the lifecycle
// controller. Answers 202 with the operation token; progress and the result
// arrive over the event socket.
func (ctrl *TranslateController) HandleTranslate(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("No image file provided"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Failed to open uploaded file"))
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			tool.DefaultLogger.Errorf("Failed to close uploaded file: %v", err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Failed to read uploaded file"))
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("No image file provided"))
		return
	}

	token := ctrl.lifecycle.Submit(types.Upload{
		FileName: fileHeader.Filename,
		Data:     data,
	})
	c.JSON(http.StatusAccepted, tool.FastReturnSuccessWithData(gin.H{"token": token}))
}

// HandleCancel invalidates the current operation.
func (ctrl *TranslateController) HandleCancel(c *gin.Context) {
	ctrl.lifecycle.Cancel()
	c.JSON(http.StatusOK, tool.FastReturnSuccess())
}

// HandleStatus answers the current lifecycle snapshot.
func (ctrl *TranslateController) HandleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(ctrl.lifecycle.Snapshot()))
}
