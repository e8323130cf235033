// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./group.go -destination=../mocks/mock_group_repository.go -package=mocks GroupRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./dues_rule.go -destination=../mocks/mock_dues_rule_repository.go -package=mocks DuesRuleRepositoryIface
//go:generate mockgen -source=./contribution.go -destination=../mocks/mock_contribution_repository.go -package=mocks ContributionRepositoryIface
//go:generate mockgen -source=./role_label.go -destination=../mocks/mock_role_label_repository.go -package=mocks RoleLabelRepositoryIface
//go:generate mockgen -source=./payment.go -destination=../mocks/mock_payment_repository.go -package=mocks PaymentRepositoryIface
//go:generate mockgen -source=./fund_request.go -destination=../mocks/mock_fund_request_repository.go -package=mocks FundRequestRepositoryIface
