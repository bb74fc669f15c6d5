package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"civicdesk-http-service/internal/domain/models"
	"civicdesk-http-service/internal/domain/services"
	"civicdesk-http-service/internal/domain/services/container"
	"civicdesk-http-service/internal/error/code"
	"civicdesk-http-service/internal/error/response"
	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceAdminController 定义管理控制器接口
type InterfaceAdminController interface {
	Dashboard()
	UpdateIssueStatus()
	NewUpdate()
	NewEvent()
}

// AdminController 管理面板控制器，所有入口都在路由层通过共享令牌校验
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateIssueStatusForm 修改问题状态的表单字段
type UpdateIssueStatusForm struct {
	ID     uint   `form:"id"`
	Status string `form:"status"`
}

// NewUpdateForm 发布官方更新的表单字段
type NewUpdateForm struct {
	Title    string `form:"title"`
	Category string `form:"category"`
	Location string `form:"location"`
	Status   string `form:"status"`
	Body     string `form:"body"`
}

// NewEventForm 创建活动的表单字段
type NewEventForm struct {
	Title     string `form:"title"`
	Venue     string `form:"venue"`
	EventDate string `form:"event_date"`
	Agenda    string `form:"agenda"`
}

// HandleAdminFunc 返回一个处理管理请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "dashboard":
			controller.Dashboard()
		case "updateIssueStatus":
			controller.UpdateIssueStatus()
		case "newUpdate":
			controller.NewUpdate()
		case "newEvent":
			controller.NewEvent()
		default:
			response.Fail(ctx, code.ErrRecordNotFound, nil)
		}
	}
}

// 1 Dashboard 管理面板：问题列表、留言列表与发布表单
// @Summary      管理面板
// @Description  列出最近问题与留言，提供状态修改和内容发布入口
// @Tags         Admin
// @Produce      html
// @Param        token query string true "管理令牌"
// @Success      200  {string}  string
// @Failure      401  {string}  string
// @Router       /admin [get]
func (c *AdminController) Dashboard() {
	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	subscriberService := c.Container.GetService("subscriber").(services.InterfaceSubscriberService)

	issues, err := issueService.GetRecentIssues(200)
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}
	messages, err := subscriberService.GetRecentMessages(100)
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	data := baseData(c.Container, "Admin")
	data["Issues"] = issues
	data["Messages"] = messages
	data["Token"] = c.Ctx.Query("token")
	data["Statuses"] = []models.IssueStatus{
		models.StatusReceived,
		models.StatusAcknowledged,
		models.StatusInProgress,
		models.StatusResolved,
	}
	c.Ctx.HTML(http.StatusOK, "admin.html", data)
}

// 2 UpdateIssueStatus 修改问题状态，成功后跳回管理面板
// @Summary      修改问题状态
// @Description  设置问题状态并刷新更新时间，目标不存在时返回404
// @Tags         Admin
// @Accept       x-www-form-urlencoded
// @Param        token formData string true "管理令牌"
// @Param        id formData int true "问题ID"
// @Param        status formData string true "目标状态"
// @Success      302  {string}  string
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/issue-status [post]
func (c *AdminController) UpdateIssueStatus() {
	idStr := c.Ctx.PostForm("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		response.ParamError(c.Ctx, "invalid issue id")
		return
	}

	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	issue, err := issueService.UpdateIssueStatus(uint(id), models.IssueStatus(c.Ctx.PostForm("status")))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			response.Fail(c.Ctx, code.ErrIssueStatusInvalid, nil)
		case errors.Is(err, services.ErrIssueNotFound):
			response.Fail(c.Ctx, code.ErrIssueNotFound, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	statsService.InvalidateCache()

	config.Info("issue %s status set to %s", issue.Reference, issue.Status)
	c.redirectToDashboard()
}

// 3 NewUpdate 发布官方更新
// @Summary      发布官方更新
// @Tags         Admin
// @Accept       x-www-form-urlencoded
// @Param        token formData string true "管理令牌"
// @Param        title formData string true "标题"
// @Param        category formData string true "类别"
// @Param        body formData string true "内容"
// @Success      302  {string}  string
// @Failure      400  {object}  response.Response
// @Router       /admin/new-update [post]
func (c *AdminController) NewUpdate() {
	var form NewUpdateForm
	if err := c.Ctx.ShouldBind(&form); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	_, err := contentService.PublishUpdate(&services.PublishUpdateRequest{
		Title:    form.Title,
		Category: form.Category,
		Location: form.Location,
		Status:   form.Status,
		Body:     form.Body,
	})
	if err != nil {
		if errors.Is(err, services.ErrUpdateValidation) || errors.Is(err, services.ErrInvalidUpdateStatus) {
			response.FailWithMessage(c.Ctx, code.ErrUpdateValidation, err.Error(), nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	statsService.InvalidateCache()

	c.redirectToDashboard()
}

// 4 NewEvent 创建公开活动
// @Summary      创建公开活动
// @Tags         Admin
// @Accept       x-www-form-urlencoded
// @Param        token formData string true "管理令牌"
// @Param        title formData string true "活动标题"
// @Param        venue formData string true "地点"
// @Param        event_date formData string true "日期 YYYY-MM-DD HH:MM"
// @Param        agenda formData string true "议程"
// @Success      302  {string}  string
// @Failure      400  {object}  response.Response
// @Router       /admin/new-event [post]
func (c *AdminController) NewEvent() {
	var form NewEventForm
	if err := c.Ctx.ShouldBind(&form); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	_, err := contentService.CreateEvent(&services.CreateEventRequest{
		Title:     form.Title,
		Venue:     form.Venue,
		EventDate: form.EventDate,
		Agenda:    form.Agenda,
	})
	if err != nil {
		if errors.Is(err, services.ErrEventValidation) {
			response.FailWithMessage(c.Ctx, code.ErrEventValidation, err.Error(), nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.redirectToDashboard()
}

// redirectToDashboard 携带本次请求的令牌跳回管理面板
func (c *AdminController) redirectToDashboard() {
	token := c.Ctx.PostForm("token")
	if token == "" {
		token = c.Ctx.Query("token")
	}
	c.Ctx.Redirect(http.StatusFound, "/admin?token="+token)
}
