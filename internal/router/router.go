package router

import (
	"github.com/blues/cfe/internal/engine"
	"github.com/blues/cfe/internal/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(eng *engine.Engine, db *gorm.DB, verifier handler.DepositVerifier) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "crowdfunding-engine",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		campaignHandler := handler.NewCampaignHandler(eng, db)
		contributeHandler := handler.NewContributeHandler(eng, db, verifier)
		refundHandler := handler.NewRefundHandler(eng, db)
		withdrawHandler := handler.NewWithdrawHandler(eng, db)
		milestoneHandler := handler.NewMilestoneHandler(eng)

		// 活动相关路由
		campaigns := v1.Group("/campaigns")
		{
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.GET("", campaignHandler.GetCampaigns)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.PUT("/:id", campaignHandler.UpdateCampaign)
			campaigns.DELETE("/:id", campaignHandler.CancelCampaign)
			campaigns.POST("/:id/transfer", campaignHandler.TransferOwnership)
			campaigns.POST("/:id/asset", campaignHandler.SetAsset)
			campaigns.POST("/:id/verified", campaignHandler.SetVerified)
			campaigns.POST("/:id/promoted", campaignHandler.SetPromoted)
			campaigns.POST("/:id/goal", campaignHandler.ModifyGoal)
			campaigns.POST("/:id/deadline", campaignHandler.ExtendDeadline)
			campaigns.GET("/:id/events", campaignHandler.GetCampaignEvents)

			// 贡献
			campaigns.POST("/:id/contributions", contributeHandler.Contribute)
			campaigns.GET("/:id/contributions", contributeHandler.GetContributionRecords)
			campaigns.GET("/:id/contributions/:address", contributeHandler.GetContribution)
			campaigns.GET("/:id/contributors", contributeHandler.GetContributors)

			// 退款
			campaigns.POST("/:id/refunds/enable", refundHandler.EnableRefunds)
			campaigns.POST("/:id/refunds", refundHandler.RequestRefund)
			campaigns.GET("/:id/refunds", refundHandler.GetRefundRecords)

			// 提取
			campaigns.POST("/:id/withdrawals/surplus", withdrawHandler.WithdrawSurplus)
			campaigns.POST("/:id/withdrawals/partial", withdrawHandler.WithdrawPartial)
			campaigns.GET("/:id/withdrawals", withdrawHandler.GetWithdrawalRecords)

			// 里程碑
			campaigns.POST("/:id/milestones", milestoneHandler.AddMilestone)
			campaigns.GET("/:id/milestones", milestoneHandler.GetMilestones)
			campaigns.POST("/:id/milestones/:index/complete", milestoneHandler.CompleteMilestone)
		}

		// 账户相关路由
		accounts := v1.Group("/accounts")
		{
			accounts.GET("/:address/campaigns", campaignHandler.GetOwnedCampaigns)
		}

		// 平台统计
		v1.GET("/stats", campaignHandler.GetPlatformStats)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
