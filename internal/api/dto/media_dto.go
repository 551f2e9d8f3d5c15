package dto

// AvatarDTO 头像上传结果
type AvatarDTO struct {
	Image string `json:"image"`
}
