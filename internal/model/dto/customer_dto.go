package dto

// CustomerUpsertRequest 创建/更新客户档案
type CustomerUpsertRequest struct {
	Name    string `json:"name" vd:"len($)>0"`
	Phone   string `json:"phone" vd:"len($)>0"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}
