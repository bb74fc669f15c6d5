package controllers

import (
	"errors"
	"net/http"

	"civicdesk-http-service/internal/domain/services"
	"civicdesk-http-service/internal/domain/services/container"
	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceIssueController 定义问题上报控制器接口
type InterfaceIssueController interface {
	ShowForm()
	Submit()
	Track()
}

// IssueController 问题上报与追踪控制器
type IssueController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewIssueController 创建一个新的问题控制器
func NewIssueController(ctx *gin.Context, container *container.ServiceContainer) *IssueController {
	return &IssueController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubmitIssueForm 提交问题的表单字段
type SubmitIssueForm struct {
	FullName string `form:"full_name"`
	Phone    string `form:"phone"`
	Area     string `form:"area"`
	Category string `form:"category"`
	Urgency  string `form:"urgency"`
	Message  string `form:"message"`
}

// HandleIssueFunc 返回一个处理问题请求的Gin处理函数
func HandleIssueFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewIssueController(ctx, container)

		switch method {
		case "showForm":
			controller.ShowForm()
		case "submit":
			controller.Submit()
		case "track":
			controller.Track()
		default:
			NewPageController(ctx, container).NotFound()
		}
	}
}

// 1 ShowForm 渲染问题提交表单
// @Summary      问题提交表单
// @Description  渲染居民问题上报页面
// @Tags         Issue
// @Produce      html
// @Success      200  {string}  string
// @Router       /issues [get]
func (c *IssueController) ShowForm() {
	c.Ctx.HTML(http.StatusOK, "issues.html", baseData(c.Container, "Issues Desk"))
}

// 2 Submit 受理提交并返回追踪编号
// @Summary      提交社区问题
// @Description  校验必填字段后分配唯一追踪编号并落库
// @Tags         Issue
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        area formData string true "区域/村庄"
// @Param        category formData string true "问题类别"
// @Param        message formData string true "问题描述"
// @Param        urgency formData string false "紧急程度，默认 Normal"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Router       /issues [post]
func (c *IssueController) Submit() {
	var form SubmitIssueForm
	if err := c.Ctx.ShouldBind(&form); err != nil {
		c.renderForm(http.StatusBadRequest, "", services.ErrIssueValidation.Error())
		return
	}

	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	issue, err := issueService.SubmitIssue(&services.SubmitIssueRequest{
		FullName: form.FullName,
		Phone:    form.Phone,
		Area:     form.Area,
		Category: form.Category,
		Urgency:  form.Urgency,
		Message:  form.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIssueValidation),
			errors.Is(err, services.ErrInvalidCategory),
			errors.Is(err, services.ErrInvalidUrgency):
			c.renderForm(http.StatusBadRequest, "", err.Error())
		default:
			renderServerError(c.Ctx, c.Container, err)
		}
		return
	}

	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	statsService.InvalidateCache()

	config.Info("issue %s received from area %s", issue.Reference, issue.Area)
	c.renderForm(http.StatusOK, issue.Reference, "")
}

// 3 Track 根据追踪编号展示问题，未命中时返回正常的"未找到"页面
// @Summary      追踪问题
// @Description  根据追踪编号查询问题当前状态
// @Tags         Issue
// @Produce      html
// @Param        reference path string true "追踪编号"
// @Success      200  {string}  string
// @Router       /track/{reference} [get]
func (c *IssueController) Track() {
	reference := c.Ctx.Param("reference")

	issueService := c.Container.GetService("issue").(services.InterfaceIssueService)
	issue, err := issueService.TrackIssue(reference)

	data := baseData(c.Container, "Track Issue")
	if err != nil {
		if errors.Is(err, services.ErrIssueNotFound) {
			// 未命中不是错误，不能泄露其它问题的任何信息
			data["NotFound"] = true
			c.Ctx.HTML(http.StatusOK, "track.html", data)
			return
		}
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	data["Issue"] = issue
	c.Ctx.HTML(http.StatusOK, "track.html", data)
}

// renderForm 渲染问题表单页，可携带成功编号或错误提示
func (c *IssueController) renderForm(status int, reference, errMsg string) {
	data := baseData(c.Container, "Issues Desk")
	if reference != "" {
		data["Reference"] = reference
	}
	if errMsg != "" {
		data["FlashError"] = errMsg
	}
	c.Ctx.HTML(status, "issues.html", data)
}
