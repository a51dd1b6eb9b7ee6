package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menulens/menulens-go/tool"
)

type SettingsController struct {
	store *tool.Store
}

func NewSettingsController(store *tool.Store) *SettingsController {
	return &SettingsController{store: store}
}

// HandleGet answers the effective settings, defaults filled in.
func (ctrl *SettingsController) HandleGet(c *gin.Context) {
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(gin.H{
		tool.SettingBackendURL:    ctrl.store.GetString(tool.SettingBackendURL, tool.DefaultBackendURL),
		tool.SettingModel:         ctrl.store.GetString(tool.SettingModel, tool.DefaultModel),
		tool.SettingCurrency:      ctrl.store.GetString(tool.SettingCurrency, tool.DefaultCurrency),
		tool.SettingIncludeImages: ctrl.store.GetBool(tool.SettingIncludeImages, true),
	}))
}

// HandlePatch updates any subset of the string settings and persists them.
func (ctrl *SettingsController) HandlePatch(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body"))
		return
	}
	// Reject the whole patch before touching the store, so a bad key never
	// leaves a half-applied update behind.
	for key := range req {
		switch key {
		case tool.SettingBackendURL, tool.SettingModel, tool.SettingCurrency, tool.SettingIncludeImages:
		default:
			c.JSON(http.StatusBadRequest, tool.FastReturnError("Unknown setting: "+key))
			return
		}
	}
	for key, value := range req {
		ctrl.store.Set(key, value)
	}
	ctrl.HandleGet(c)
}
