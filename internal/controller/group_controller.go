package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/Quokka/internal/dto"
)

// ListGroupsHandler godoc
// @Summary List all groups
// @Description All groups with creator summary and question count, newest first.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.GroupResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /groups [get]
func (ctrl *Controller) ListGroupsHandler(c *gin.Context) {
	groups, err := ctrl.groupSvc.ListGroups()
	if err != nil {
		respondError(c, err, "Failed to retrieve groups")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// CreateGroupHandler godoc
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param group body dto.CreateGroupRequest true "Group data"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} dto.ErrorResponse "Empty name"
// @Failure 401 {object} dto.ErrorResponse
// @Router /groups [post]
func (ctrl *Controller) CreateGroupHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateGroupRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Group name is required"})
		return
	}

	group, err := ctrl.groupSvc.CreateGroup(userID, req)
	if err != nil {
		respondError(c, err, "Group not found")
		return
	}
	c.JSON(http.StatusCreated, group)
}

// UpdateGroupHandler godoc
// @Summary Update a group
// @Description Overwrites name/description. Only the creator may update; a missing group and a foreign group report identically.
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param group body dto.UpdateGroupRequest true "Group data"
// @Success 200 {object} dto.GroupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Not found or not owner"
// @Router /groups [put]
func (ctrl *Controller) UpdateGroupHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind UpdateGroupRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	group, err := ctrl.groupSvc.UpdateGroup(userID, req)
	if err != nil {
		respondError(c, err, "Group not found or access denied")
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroupHandler godoc
// @Summary Delete a group
// @Description Deletes the group and everything under it: questions, answers, likes.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id query int true "Group ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Not found or not owner"
// @Router /groups [delete]
func (ctrl *Controller) DeleteGroupHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Group ID is required"})
		return
	}

	if err := ctrl.groupSvc.DeleteGroup(userID, uint(id)); err != nil {
		respondError(c, err, "Group not found or access denied")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Group deleted successfully"})
}
